package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the editor to open the configuration with.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, nil
		}
	}
	return "", fmt.Errorf("no editor found, set $EDITOR")
}

func editConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Create the default config first so there is something to edit
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.WriteConfig(path, config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	// The editor may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's environment
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	if _, err := config.LoadUserConfigFrom(path); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with the default configuration.\n", path)
	fmt.Print("Continue? [y/N] ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Reset cancelled")
		return nil
	}

	if err := config.WriteConfig(path, config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset to defaults: %s\n", path)
	return nil
}
