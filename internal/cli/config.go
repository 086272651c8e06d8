package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage showcasectl configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write ~/.showcasectl.yaml with the default settings.

Existing files are left alone unless --force is given.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	RunE:  runConfigShow,
}

// fileConfig is the on-disk config shape.
type fileConfig struct {
	APIURL    string `yaml:"api_url,omitempty"`
	Env       string `yaml:"env"`
	TokenFile string `yaml:"token_file,omitempty"`
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}
	path := filepath.Join(home, ".showcasectl.yaml")

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := fileConfig{
		Env:       "development",
		TokenFile: tokenPath(),
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("%s Config written to %s\n", colorGreen("✓"), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	resolved := map[string]string{
		"api_url":    resolveBaseURL(),
		"env":        viper.GetString("env"),
		"token_file": tokenPath(),
	}

	if jsonOut {
		return printJSON(resolved)
	}

	fmt.Printf("API URL:    %s\n", resolved["api_url"])
	fmt.Printf("Env:        %s\n", resolved["env"])
	fmt.Printf("Token file: %s\n", resolved["token_file"])
	return nil
}
