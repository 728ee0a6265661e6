package cmd

import (
	"fmt"
	"os"

	"github.com/Alia5/beangen/internal/version"
)

type Version struct{}

// Run is called by Kong when the version command is executed.
func (v *Version) Run() error {
	ver, err := version.GetVersion()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(os.Stdout, "beangen %s\n", ver)
	return err
}
