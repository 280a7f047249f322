package cmd

import (
	"fmt"
	"io"

	"github.com/harlequix/ecsim/internal/format"
	"github.com/harlequix/ecsim/simulator"
)

func printGeneration(w io.Writer, report *simulator.Report) {
	crc, ham := &report.CRC, &report.Hamming

	fmt.Fprintln(w, "--- CRC (Error Detection) ---")
	if report.Text != "" {
		fmt.Fprintf(w, "Original Text: %q\n", report.Text)
	}
	fmt.Fprintf(w, "Original Data: %s\n", crc.Data)
	fmt.Fprintf(w, "CRC Generator: %s\n", crc.Key)
	fmt.Fprintf(w, "CRC Remainder: %s\n", crc.Remainder)
	fmt.Fprintf(w, "Transmitted Codeword (Data + Remainder): %s\n", crc.Codeword)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Hamming Code (Error Correction) ---")
	fmt.Fprintf(w, "Original Data: %s\n", ham.Data)
	fmt.Fprintf(w, "Parity Bits: %d\n", ham.ParityBits)
	fmt.Fprintf(w, "Transmitted Hamming Codeword: %s\n", ham.Codeword)
	fmt.Fprintf(w, "                              %s\n", format.ParityMarker(len(ham.Codeword)))
}

func printTransmission(w io.Writer, report *simulator.Report) {
	crc, ham := &report.CRC, &report.Hamming

	fmt.Fprintf(w, "--- Channel: %s ---\n", report.Channel)
	if crc.OutOfBounds {
		fmt.Fprintf(w, "Error position is out of bounds for the CRC codeword (length %d).\n", len(crc.Codeword))
		fmt.Fprintln(w, "CRC Check: No error introduced, so no error detected.")
	} else {
		fmt.Fprintf(w, "Erroneous CRC Codeword received: %s\n", crc.Received)
		fmt.Fprintf(w, "                                 %s\n", format.Marker(len(crc.Received), crc.Flipped...))
		fmt.Fprintf(w, "Flipped: %s  Remainder: %s\n", format.Positions(crc.Flipped), crc.Syndrome)
		switch {
		case crc.Detected:
			fmt.Fprintln(w, "CRC Check: Error DETECTED! The data is corrupted.")
		case crc.Corrupted():
			fmt.Fprintln(w, "CRC Check: No error detected (this can happen with specific multi-bit errors).")
		default:
			fmt.Fprintln(w, "CRC Check: No error detected.")
		}
	}

	fmt.Fprintln(w)
	if ham.OutOfBounds {
		fmt.Fprintf(w, "Error position is out of bounds for the Hamming codeword (length %d).\n", len(ham.Codeword))
		fmt.Fprintln(w, "Hamming Check: No error introduced, so no correction needed.")
		return
	}
	fmt.Fprintf(w, "Erroneous Hamming Codeword received: %s\n", ham.Received)
	fmt.Fprintf(w, "                                     %s\n", format.Marker(len(ham.Received), ham.Flipped...))
	switch {
	case ham.ErrorPosition == 0:
		fmt.Fprintln(w, "Hamming Check: No error detected.")
	case !ham.Correctable:
		fmt.Fprintf(w, "Hamming Check: Syndrome %d is past the end of the codeword, cannot correct.\n", ham.ErrorPosition)
	default:
		fmt.Fprintf(w, "Hamming Check: Error DETECTED at bit position %d.\n", ham.ErrorPosition)
		fmt.Fprintf(w, "   Corrected Codeword: %s\n", ham.Corrected)
		if !ham.Recovered() {
			fmt.Fprintln(w, "   (more than one bit was flipped, the correction is wrong)")
		}
	}
	fmt.Fprintf(w, "   Decoded Data: %s\n", ham.Decoded)
}
