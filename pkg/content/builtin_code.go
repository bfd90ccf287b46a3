package content

// Code samples are kept byte-for-byte; do not reformat.

const (
	introCode = `    PROCESSOR 16F877
    #include <p16f877.inc>
    
    ; Configuration bits
    __CONFIG _CP_OFF & _WDT_OFF & _BODEN_OFF & _PWRTE_ON & _HS_OSC & _WRT_OFF & _LVP_OFF & _CPD_OFF

    ORG 0x000    ; Reset vector
    goto Main
    
    ORG 0x004    ; Interrupt vector
    retfie
    
Main
    banksel TRISB    ; Select bank 1
    clrf    TRISB    ; Set PORTB as output
    banksel PORTB    ; Select bank 0
    
Loop
    movlw   0xFF    ; Load W with all 1's
    movwf   PORTB   ; Turn on all PORTB pins
    call    Delay   ; Wait
    clrf    PORTB   ; Turn off all PORTB pins
    call    Delay   ; Wait
    goto    Loop    ; Repeat forever

Delay
    movlw   0xFF    ; Load delay count
    movwf   0x20    ; Store in file register
Delay_Loop
    decfsz  0x20, 1 ; Decrement counter
    goto    Delay_Loop
    return
    
    END             ; End of program`

	lcdCode = `    PROCESSOR 16F877
    #include <p16f877.inc>
    
    ; LCD pins on PORTB
    #define LCD_RS  0   ; Register Select on RB0
    #define LCD_EN  1   ; Enable on RB1
    
    ORG 0x000
    goto Main
    
LCD_Init
    banksel TRISB
    clrf    TRISB       ; Set PORTB as output
    banksel PORTB
    
    ; Wait for LCD power-up
    movlw   0x30
    call    LCD_Command
    call    Delay_5ms
    
    ; Initialize 4-bit mode
    movlw   0x02
    call    LCD_Command
    movlw   0x28        ; 4-bit, 2 lines, 5x7
    call    LCD_Command
    movlw   0x0C        ; Display ON, cursor OFF
    call    LCD_Command
    movlw   0x06        ; Auto increment cursor
    call    LCD_Command
    movlw   0x01        ; Clear display
    call    LCD_Command
    return

LCD_Command
    bcf     PORTB, LCD_RS  ; RS=0 for command
    goto    LCD_Send
    
LCD_Data
    bsf     PORTB, LCD_RS  ; RS=1 for data
    
LCD_Send
    movwf   0x20           ; Save data
    andlw   0xF0           ; Send upper nibble
    movwf   PORTB
    bsf     PORTB, LCD_EN  ; Enable pulse
    nop
    bcf     PORTB, LCD_EN
    
    swapf   0x20, W        ; Send lower nibble
    andlw   0xF0
    movwf   PORTB
    bsf     PORTB, LCD_EN
    nop
    bcf     PORTB, LCD_EN
    
    call    Delay_5ms
    return

Main
    call    LCD_Init
    
    ; Write "Hello, World!"
    movlw   'H'
    call    LCD_Data
    movlw   'e'
    call    LCD_Data
    movlw   'l'
    call    LCD_Data
    movlw   'l'
    call    LCD_Data
    movlw   'o'
    call    LCD_Data
    
    END`

	motorCode = `    PROCESSOR 16F877
    #include <p16f877.inc>
    
    ; Direction pins
    #define DIR1    0   ; RD0
    #define DIR2    1   ; RD1
    
    ORG 0x000
    goto Main
    
PWM_Init
    banksel TRISC
    bcf     TRISC, 2      ; CCP1 output
    banksel PORTC
    
    ; Configure Timer2
    banksel T2CON
    movlw   0x07          ; Prescaler 1:16
    movwf   T2CON
    
    ; Configure CCP1 for PWM
    movlw   0x0C          ; PWM mode
    movwf   CCP1CON
    
    ; Set PWM period (PR2)
    banksel PR2
    movlw   0xFF
    movwf   PR2
    
    ; Set initial duty cycle
    movlw   0x7F          ; 50% duty cycle
    movwf   CCPR1L
    return

Motor_Init
    banksel TRISD
    clrf    TRISD         ; Direction pins as output
    banksel PORTD
    return

Motor_Forward
    banksel PORTD
    bsf     PORTD, DIR1
    bcf     PORTD, DIR2
    return

Motor_Reverse
    banksel PORTD
    bcf     PORTD, DIR1
    bsf     PORTD, DIR2
    return

Motor_Stop
    banksel PORTD
    bcf     PORTD, DIR1
    bcf     PORTD, DIR2
    return

Main
    call    PWM_Init
    call    Motor_Init
    
    ; Example motor control sequence
Loop
    call    Motor_Forward
    movlw   0xFF          ; Full speed
    movwf   CCPR1L
    call    Delay_1s
    
    call    Motor_Reverse
    movlw   0x7F          ; Half speed
    movwf   CCPR1L
    call    Delay_1s
    
    call    Motor_Stop
    call    Delay_1s
    
    goto    Loop
    
    END`

	advancedCode = `    PROCESSOR 16F877
    #include <p16f877.inc>
    
    ; Variables
    CBLOCK  0x20
    Counter
    Speed
    ENDC
    
    ORG 0x000
    goto Main
    
    ORG 0x004           ; Interrupt vector
    btfss   PIR1, TMR1IF
    retfie
    bcf     PIR1, TMR1IF
    incf    Counter, F
    movlw   .10
    xorwf   Counter, W
    btfss   STATUS, Z
    retfie
    clrf    Counter
    call    Update_Display
    retfie
    
Timer1_Init
    banksel T1CON
    movlw   0x31        ; Timer1 ON, 1:8 prescale
    movwf   T1CON
    
    banksel PIE1
    bsf     PIE1, TMR1IE
    banksel INTCON
    bsf     INTCON, PEIE
    bsf     INTCON, GIE
    return

Update_Display
    ; Save current speed to LCD
    banksel Speed
    movf    Speed, W
    call    Binary_to_BCD
    call    Display_Speed
    return

Main
    call    LCD_Init
    call    PWM_Init
    call    Timer1_Init
    
    ; Main control loop
Loop
    banksel Speed
    movf    Speed, W    ; Get current speed
    movwf   CCPR1L      ; Update PWM
    
    btfss   PORTB, 0    ; Check speed up button
    call    Increase_Speed
    btfss   PORTB, 1    ; Check speed down button
    call    Decrease_Speed
    
    goto    Loop
    
    END`
)
