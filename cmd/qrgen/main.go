// Command qrgen encodes a message into a QR symbol and writes it as a PNG,
// prints it to the terminal, or both. It mirrors
// original_source/qrgen/__main__.py's flag set, translated to Cobra idiom
// per the teacher pack's cmd/ convention (dfbb-im2code/cmd/im2code).
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ashokshau/qrcode"
	"github.com/ashokshau/qrcode/qrimage"
	"github.com/ashokshau/qrcode/qrterm"
)

var (
	flagVersion    int
	flagEncoding   string
	flagECLevel    string
	flagOut        string
	flagConfig     string
	flagScale      int
	flagQuietZone  int
	flagTerminal   bool
	flagHalfBlocks bool
	flagStats      bool
	flagLibrary    bool
)

var rootCmd = &cobra.Command{
	Use:   "qrgen [message]",
	Short: "Generate a QR code for a message",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.Flags().IntVar(&flagVersion, "ver", 0, "QR version to encode with (1-40, chosen automatically if not provided)")
	rootCmd.Flags().StringVar(&flagEncoding, "enc", "byte", "encoding (numeric/alphanumeric/byte)")
	rootCmd.Flags().StringVar(&flagECLevel, "ecl", "M", "error correction level (L/M/Q/H)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output PNG file")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file supplying defaults for the flags above; explicit flags take precedence")
	rootCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module in the PNG output")
	rootCmd.Flags().IntVar(&flagQuietZone, "quiet-zone", 4, "quiet zone width, in modules, around the PNG output")
	rootCmd.Flags().BoolVarP(&flagTerminal, "terminal", "t", false, "display the QR code in the terminal")
	rootCmd.Flags().BoolVar(&flagHalfBlocks, "lib-render", false, "use github.com/mdp/qrterminal/v3 instead of this package's own terminal renderer")
	rootCmd.Flags().BoolVarP(&flagStats, "stats", "v", false, "print statistics about the generated QR code")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	qrcode.SetLogger(logger)

	message := args[0]

	fc, err := loadFileConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", flagConfig, err)
	}
	applyFileConfig(fc)

	var opts []qrcode.Option
	if flagVersion != 0 {
		opts = append(opts, qrcode.WithVersion(flagVersion))
	}
	if flagEncoding != "" {
		mode, err := qrcode.ParseMode(flagEncoding)
		if err != nil {
			return err
		}
		opts = append(opts, qrcode.WithMode(mode))
	}
	ec, err := qrcode.ParseECLevel(flagECLevel)
	if err != nil {
		return err
	}
	opts = append(opts, qrcode.WithECLevel(ec))

	code, err := qrcode.Encode(message, opts...)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	logger.Info("encoded QR code", "version", code.Stats.Version, "ec", code.Stats.ECLevel, "mask", code.Stats.MaskID)

	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := qrimage.Encode(f, code, qrimage.Options{Scale: flagScale, QuietZone: flagQuietZone}); err != nil {
			return fmt.Errorf("writing PNG: %w", err)
		}
		fmt.Println("Exported the QR code to", flagOut)
	}

	if flagTerminal {
		if flagHalfBlocks {
			qrterm.RenderWithLibrary(os.Stdout, message, ec, true)
		} else {
			qrterm.Render(os.Stdout, code)
		}
	}

	if flagStats {
		printStats(code.Stats)
	}

	return nil
}

func applyFileConfig(fc fileConfig) {
	if fc.Version != 0 && flagVersion == 0 {
		flagVersion = fc.Version
	}
	if fc.Encoding != "" && !rootCmd.Flags().Changed("enc") {
		flagEncoding = fc.Encoding
	}
	if fc.ECLevel != "" && !rootCmd.Flags().Changed("ecl") {
		flagECLevel = fc.ECLevel
	}
	if fc.Out != "" && flagOut == "" {
		flagOut = fc.Out
	}
	if fc.Scale != 0 && !rootCmd.Flags().Changed("scale") {
		flagScale = fc.Scale
	}
	if fc.QuietZone != 0 && !rootCmd.Flags().Changed("quiet-zone") {
		flagQuietZone = fc.QuietZone
	}
	if fc.Terminal {
		flagTerminal = true
	}
	if fc.HalfBlocks {
		flagHalfBlocks = true
	}
}

func printStats(s qrcode.Stats) {
	fmt.Println("QR Code:")
	fmt.Printf("  Version = %d\n", s.Version)
	fmt.Printf("  Encoding = %s\n", s.Mode)
	fmt.Printf("  Error Correction Level = %s\n", s.ECLevel)
	fmt.Printf("  Encoded using pattern mask number %d\n", s.MaskID)
	fmt.Println()
	fmt.Printf("  Size of the QR-code = %d x %d = %d modules\n", s.SymbolSize, s.SymbolSize, s.SymbolSize*s.SymbolSize)
	fmt.Printf("  Number of data codewords = %d\n", s.DataCodewords)
	fmt.Printf("  Number of error correction codewords = %d\n", s.ECCodewords)
	fmt.Println()
	fmt.Printf("  Encoded Message = %s\n", s.Message)
	fmt.Printf("  Message Length = %d characters\n", s.MessageLength)
}
