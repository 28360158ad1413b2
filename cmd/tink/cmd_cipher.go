package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinkerbox/internal/cipher"
)

var (
	caesarShift   int
	caesarDecrypt bool
	base64Decode  bool
	hashAlgorithm string
)

var cipherCmd = &cobra.Command{
	Use:   "cipher",
	Short: "Classic ciphers, base64, and hashing",
}

var cipherCaesarCmd = &cobra.Command{
	Use:   "caesar [text...]",
	Short: "Shift letters by a fixed offset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := joinArgs(args)
		if caesarDecrypt {
			fmt.Println(cipher.CaesarDecrypt(text, caesarShift))
		} else {
			fmt.Println(cipher.Caesar(text, caesarShift))
		}
		return nil
	},
}

var cipherBase64Cmd = &cobra.Command{
	Use:   "base64 [text...]",
	Short: "Base64 encode or decode",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := joinArgs(args)
		if base64Decode {
			decoded, err := cipher.Base64Decode(text)
			if err != nil {
				return err
			}
			fmt.Println(decoded)
			return nil
		}
		fmt.Println(cipher.Base64Encode(text))
		return nil
	},
}

var cipherHashCmd = &cobra.Command{
	Use:   "hash [text...]",
	Short: "Hex digest of the input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digest, err := cipher.Digest(joinArgs(args), hashAlgorithm)
		if err != nil {
			return err
		}
		fmt.Println(digest)
		return nil
	},
}

func init() {
	cipherCaesarCmd.Flags().IntVarP(&caesarShift, "shift", "s", 3, "Shift amount")
	cipherCaesarCmd.Flags().BoolVarP(&caesarDecrypt, "decrypt", "d", false, "Decrypt instead of encrypt")
	cipherBase64Cmd.Flags().BoolVarP(&base64Decode, "decode", "d", false, "Decode instead of encode")
	cipherHashCmd.Flags().StringVarP(&hashAlgorithm, "algorithm", "a", "sha256", "md5, sha1, or sha256")

	cipherCmd.AddCommand(cipherCaesarCmd, cipherBase64Cmd, cipherHashCmd)
}
