package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/zenith/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunExtension attempts to find and execute an external zenith-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global flags are passed to the extension as the environment variables config.Load reads.
func RunExtension(subcommand string, args []string, stdin io.Reader, stdout, stderr io.Writer) (bool, int) {
	externalCmdName := "zenith-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		zap.L().Debug("external command not found", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	if *seedFile != "" {
		cmd.Env = append(cmd.Env, config.EnvSeedFile+"="+*seedFile)
	}
	if *locale != "" {
		cmd.Env = append(cmd.Env, config.EnvLocale+"="+*locale)
	}
	if *Verbose {
		cmd.Env = append(cmd.Env, config.EnvVerbose+"="+strconv.FormatBool(*Verbose))
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
