package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

const secretBytes = 32

// secretGenerateCmd represents the secret generate command
var secretGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a JWT signing secret",
	Long: `Generate a Base64-encoded 256 bit secret for signing session tokens.

Place the output in PAWGRESS_JWT_SECRET (or jwt_secret in pawgress.yml).
Changing the secret invalidates every token issued with the old one.

Example:
  export PAWGRESS_JWT_SECRET="$(pawgressctl secret generate)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := generateSecret()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	},
}

func init() {
	secretCmd.AddCommand(secretGenerateCmd)
}

func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
