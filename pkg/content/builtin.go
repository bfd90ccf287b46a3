package content

import "github.com/vanderheijden86/picbook/pkg/model"

// DatasheetURL is the PIC16F877 datasheet linked from the navbar.
const DatasheetURL = "https://ww1.microchip.com/downloads/en/devicedoc/33023a.pdf"

// Builtin returns the PIC16F877 assembly course shipped with picbook.
func Builtin() *Store {
	s, err := New(builtinMeta(), builtinTutorials())
	if err != nil {
		// The built-in lessons are static data; failing here is a programming error.
		panic("content: invalid built-in tutorials: " + err.Error())
	}
	return s
}

func builtinMeta() Meta {
	return Meta{
		Title:  "PIC Assembly",
		Author: "Martin Carballo",
		Links: []model.Link{
			{Label: "PIC16F877 Datasheet", URL: DatasheetURL},
		},
	}
}

func builtinTutorials() []model.TutorialRecord {
	return []model.TutorialRecord{
		// =============================================================
		// 1. INTRODUCTION
		// =============================================================
		{
			Title: "Introduction to PIC Assembly",
			Icon:  "cpu",
			Description: `PIC16F877 assembly programming requires understanding of the microcontroller's
architecture and instruction set. The PIC16F877 is an 8-bit microcontroller
with Harvard architecture, featuring:

- 8K x 14 words of Flash Program Memory
- 368 x 8 bytes of Data Memory (RAM)
- 256 x 8 bytes of EEPROM Data Memory
- 33 I/O pins across 5 ports (A, B, C, D, E)
`,
			Code: introCode,
			Explanation: `### Code Explanation:

- The program begins by specifying the processor and including necessary header files
- Configuration bits are set for the oscillator type, watchdog timer, etc.
- The main program configures PORTB as output and creates a simple LED blinking pattern
- A delay routine is implemented using a counter in file register 0x20
`,
		},

		// =============================================================
		// 2. LCD
		// =============================================================
		{
			Title: "16x2 LCD Interface",
			Icon:  "monitor",
			Description: `Interfacing a 16x2 LCD with PIC16F877 requires proper initialization and
understanding of the LCD's command set. We'll use the following connections:

- RS (Register Select) → RB0
- EN (Enable) → RB1
- D4-D7 → RB4-RB7 (4-bit mode)
`,
			Code: lcdCode,
			Explanation: `### LCD Interface Explanation:

- The LCD is initialized in 4-bit mode to save I/O pins
- LCD_Command sends instructions to the LCD (RS=0)
- LCD_Data sends characters to display (RS=1)
- Each byte is sent as two nibbles (4-bits) with an enable pulse
`,
		},

		// =============================================================
		// 3. MOTOR
		// =============================================================
		{
			Title: "DC Motor Control",
			Icon:  "rotate-cw",
			Description: `Controlling a DC motor with PIC16F877 involves PWM (Pulse Width Modulation)
for speed control and H-bridge for direction control. We'll use:

- CCP1 (RC2) for PWM output
- RD0 and RD1 for direction control
`,
			Code: motorCode,
			Explanation: `### DC Motor Control Explanation:

- PWM is configured using CCP1 module and Timer2
- Direction control uses two pins connected to an H-bridge
- Speed is controlled by adjusting the PWM duty cycle (CCPR1L)
- The example demonstrates forward, reverse, and variable speed control
`,
		},

		// =============================================================
		// 4. ADVANCED
		// =============================================================
		{
			Title: "Advanced Concepts",
			Icon:  "settings",
			Description: `Advanced PIC assembly programming involves interrupts, timers, and combining
multiple peripherals. Here are some key concepts:

- Using interrupts for real-time response
- Timer calculations for precise timing
- Combining LCD display with motor feedback
`,
			Code: advancedCode,
			Explanation: `### Advanced Features:

- Timer1 interrupt used for regular LCD updates
- Speed control with feedback display
- Button debouncing and input handling
- Combining PWM, LCD, and interrupt handling

This example shows how to integrate multiple peripherals while maintaining
real-time operation through interrupts. The LCD displays the current motor
speed while allowing user control through buttons.
`,
		},
	}
}
