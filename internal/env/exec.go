package env

import (
	"fmt"
	"os"
	"os/exec"
)

// Exec executes a command with the sandbox environment, attached to the
// caller's stdio.
func Exec(environment *Environment, args []string) error {
	return ExecWithEnv(environment, args, nil)
}

// ExecWithEnv executes a command with the sandbox environment plus extra env vars
func ExecWithEnv(environment *Environment, args []string, extraEnv map[string]string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hms-sandbox env exec -- <cmd...>")
	}

	// exec.Command looks the binary up against the process PATH, not cmd.Env,
	// so the sandbox bin directories have to be adopted before the lookup.
	if environment.Path != "" {
		os.Setenv("PATH", environment.Path)
	}

	cmd := exec.Command(args[0], args[1:]...)

	cmdEnv := environment.MergeWithCurrent()
	for key, value := range extraEnv {
		cmdEnv = append(cmdEnv, key+"="+value)
	}
	cmd.Env = cmdEnv

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
