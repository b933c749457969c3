package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/qrlogo/qrlogo/imgio"
	"github.com/qrlogo/qrlogo/qr"
	"github.com/qrlogo/qrlogo/version"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {

	parser := argparse.NewParser("qr-logo", "QR code generator with optional centered logo, version "+version.Version)

	data := parser.String("d", "data", &argparse.Options{Required: false, Help: "Text to encode, prompted for interactively when omitted"})
	logo := parser.String("l", "logo", &argparse.Options{Required: false, Help: "Path to a logo image to center over the QR code"})
	out := parser.String("o", "out", &argparse.Options{Required: false, Help: "Output image path, format picked by extension (png, bmp, jpg)", Default: "qrCode.png"})
	boxSize := parser.Int("b", "box-size", &argparse.Options{Required: false, Help: "Pixels per QR module", Default: qr.DefaultBoxSize})
	border := parser.Int("r", "border", &argparse.Options{Required: false, Help: "Quiet zone width in modules", Default: qr.DefaultBorder})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Required: false, Help: "Enable debug logging"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := bufio.NewReader(os.Stdin)

	if *data == "" {
		if !interactive {
			fmt.Println("Nothing to encode: pass --data or run from a terminal")
			os.Exit(1)
		}
		*data, err = readLine(in, "Enter the data to be encoded in the QR code: ")
		if err != nil {
			fmt.Println("Error reading input: ", err)
			os.Exit(1)
		}
	}

	if *logo == "" && interactive {
		answer, err := readLine(in, "Enter the path to the logo image file (optional): ")
		if err != nil {
			fmt.Println("Error reading input: ", err)
			os.Exit(1)
		}
		*logo = strings.Trim(answer, `"`)
	}

	opts := qr.Options{BoxSize: *boxSize, Border: *border, Logo: *logo}
	img, err := opts.Generate(*data)
	if err != nil {
		fmt.Println("Error generating QR code: ", err)
		os.Exit(1)
	}

	if err := imgio.Save(img, *out); err != nil {
		fmt.Println("Error saving QR code: ", err)
		os.Exit(1)
	}

	fmt.Printf("QR code saved to %s\n", *out)
}

func readLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
