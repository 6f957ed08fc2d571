package main

const (
	defaultInputPath  = "logs/entropy_log.jsonl"
	defaultOutputPath = "logs/output.csv"
)

// Config holds the two paths a conversion run reads from and writes to.
type Config struct {
	InputPath  string
	OutputPath string
}

// DefaultConfig returns the paths used when none are given on the command line.
func DefaultConfig() Config {
	return Config{
		InputPath:  defaultInputPath,
		OutputPath: defaultOutputPath,
	}
}

// withArgs overrides the input and output paths from positional arguments.
// Missing arguments keep their defaults.
func (c Config) withArgs(args []string) Config {
	if len(args) > 0 && args[0] != "" {
		c.InputPath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		c.OutputPath = args[1]
	}
	return c
}
