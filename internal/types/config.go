package types

// Driver kinds
const (
	DriverNone     = "none"
	DriverTerminal = "terminal"
	DriverGPIO     = "gpio"
	DriverHUB75    = "hub75"
)

// DisplayConfig represents the configuration for the LED matrix and its refresh
type DisplayConfig struct {
	Rows      int    `toml:"rows" validate:"min=1,max=32"`
	Cols      int    `toml:"cols" validate:"min=1,max=64"`
	RefreshHz int    `toml:"refresh_hz" validate:"min=1,max=100000"`
	Levels    int    `toml:"levels" validate:"min=1,max=255"`
	Driver    string `toml:"driver" validate:"oneof=none terminal gpio hub75"`
}

// AnimationConfig represents the configuration for the scrolling text
type AnimationConfig struct {
	TickHz        int    `toml:"tick_hz" validate:"min=1,max=1000"`
	Message       string `toml:"message"`
	TrailingBlank int    `toml:"trailing_blank" validate:"min=0"`
	LetterSpacing int    `toml:"letter_spacing" validate:"min=0,max=8"`
	Brightness    int    `toml:"brightness" validate:"min=1,max=255"`
	Loop          bool   `toml:"loop"`
}

// GPIOConfig represents the row and column lines of a directly wired matrix
type GPIOConfig struct {
	Chip         string `toml:"chip" validate:"required"`
	Rows         []int  `toml:"rows" validate:"dive,min=0"`
	Cols         []int  `toml:"cols" validate:"dive,min=0"`
	RowActiveLow bool   `toml:"row_active_low"`
	ColActiveLow bool   `toml:"col_active_low"`
}

// HUB75Config represents the lines of a single-colour HUB75 panel
type HUB75Config struct {
	Chip string `toml:"chip" validate:"required"`
	Addr []int  `toml:"addr" validate:"max=5,dive,min=0"`
	Data int    `toml:"data" validate:"min=0"`
	Clk  int    `toml:"clk" validate:"min=0"`
	Lat  int    `toml:"lat" validate:"min=0"`
	OE   int    `toml:"oe" validate:"min=0"`
}

// TerminalConfig represents the terminal simulator
type TerminalConfig struct {
	RedrawHz int `toml:"redraw_hz" validate:"min=1,max=240"`
}

// ServerConfig represents the status HTTP server
type ServerConfig struct {
	Listen string `toml:"listen" validate:"omitempty,hostname_port"`
}

// LoggingConfig represents the log output
type LoggingConfig struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error"`
	File  string `toml:"file"`
}
