package domain

import "io"

// Command is a single external process invocation.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string

	// Dir is the working directory; empty means the current directory.
	Dir string

	// Env holds "KEY=VALUE" entries layered over the system environment.
	// A PATH entry is prepended to the system PATH.
	Env []string

	// Stdout and Stderr receive the process output in addition to the log.
	Stdout io.Writer
	Stderr io.Writer

	// Silent suppresses logging of the output unless the command fails.
	Silent bool
}

// Program returns the executable name, or "" for an empty command.
func (c *Command) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}
