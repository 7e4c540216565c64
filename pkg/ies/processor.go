package ies

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	// FileTag is the format marker of LM-63 files. Many valid files lack it,
	// so it is never required.
	FileTag = "IESNA"

	// FileGeneralTag starts the line that ends the header.
	FileGeneralTag = "TILT="

	// FileExtraTag is the only TILT variant the renderer supports.
	FileExtraTag = "TILT=NONE"
)

// updateTolerance is how far a scale must be from 1 before Update applies it.
const updateTolerance = 0.01

// Processor reads, updates and writes IES photometric data. It holds no
// state, so one Processor may be shared by concurrent callers as long as
// each call works on its own LightData.
type Processor struct{}

// NewProcessor creates a new IES processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Parse reads the IES file filename into data. On failure data is cleared
// and the returned error carries an ErrorCode (see Code).
func (p *Processor) Parse(data *LightData, filename string) error {
	if filename == "" {
		data.Clear()
		return NoFile
	}

	file, err := os.Open(filename)
	if err != nil {
		data.Clear()
		return fmt.Errorf("%w: %w", FailedToReadFile, err)
	}
	defer file.Close()

	if err := p.ParseReader(data, file); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// ParseString parses IES text held in memory.
func (p *Processor) ParseString(data *LightData, input string) error {
	return p.ParseReader(data, strings.NewReader(input))
}

// ParseReader parses IES text from r into data. On failure data is cleared.
func (p *Processor) ParseReader(data *LightData, r io.Reader) error {
	data.Clear()

	tokens, header, err := p.tokensFromReader(r)
	if err != nil {
		data.Clear()
		return err
	}
	data.ExtraData = header

	if err := p.parseTokens(data, tokens); err != nil {
		data.Clear()
		return err
	}

	if !data.IsValid() {
		if data.PhotometricType != 1 {
			err = fmt.Errorf("%w: photometric type %d", NotSupported, data.PhotometricType)
		} else {
			err = InvalidDataInIESFile
		}
		data.Clear()
		return err
	}

	return nil
}

// tokensFromReader splits the input into header text and the values of the
// numeric block. The header runs from the first line through the TILT line.
func (p *Processor) tokensFromReader(r io.Reader) ([]string, string, error) {
	br := bufio.NewReader(r)

	first, ok, err := readLine(br)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", FailedToReadFile, err)
	}
	if !ok {
		return nil, "", NotIESFile
	}

	var text strings.Builder
	text.WriteString(first)
	text.WriteByte('\n')

	var tokens []string
	hasTag := false
	inDataSegment := false

	for {
		line, ok, err := readLine(br)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", FailedToReadFile, err)
		}
		if !ok {
			break
		}
		hasNumbers := lineHasNumbers(line)

		if hasNumbers && hasTag {
			inDataSegment = true
		}

		if inDataSegment {
			if hasNumbers {
				if tokens, err = splitLine(tokens, line); err != nil {
					return nil, "", fmt.Errorf("%w: %w", ParseFailed, err)
				}
			}
			continue
		}

		// nothing after the TILT line is header text
		if hasTag {
			continue
		}

		text.WriteString(line)
		text.WriteByte('\n')

		if !strings.HasPrefix(line, FileGeneralTag) {
			continue
		}
		if !strings.HasPrefix(line, FileExtraTag) {
			return nil, "", fmt.Errorf("%w: %s", NotSupported, strings.TrimSpace(line))
		}
		hasTag = true
	}

	if !hasTag {
		return nil, "", NotIESFile
	}
	return tokens, text.String(), nil
}

// readLine returns the next line without its "\n" or "\r\n" ending. Lines
// have no length limit. ok is false once the input is exhausted.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

// parseTokens runs the state machine over tokens.
func (p *Processor) parseTokens(data *LightData, tokens []string) error {
	reader := newTokenReader(data)

	for i, value := range tokens {
		if !reader.next(value) {
			if reader.state == EndOfParse {
				return fmt.Errorf("%w: %d unexpected values after the candela table", ParseFailed, len(tokens)-i)
			}
			return fmt.Errorf("%w: token %d", ParseFailed, i)
		}
		if reader.state == StateParseFailed {
			return fmt.Errorf("%w: bad value %q at token %d", ParseFailed, value, i)
		}
	}

	if reader.state != EndOfParse {
		return fmt.Errorf("%w: stopped in %s", UnexpectedEndOfFile, reader.state)
	}
	return nil
}

// Update applies req to data. Scales within 1% of 1 are ignored.
func (p *Processor) Update(data *LightData, req UpdateRequest) error {
	if math.Abs(req.Scale-1) > updateTolerance {
		data.Width *= req.Scale
		data.Length *= req.Scale
		data.Height *= req.Scale
	}
	return nil
}

// ToString returns data in IES text form, as handed to the renderer's
// light declaration. The output parses back to the same values.
func (p *Processor) ToString(data *LightData) string {
	var sb strings.Builder
	sb.WriteString(data.ExtraData)

	fmt.Fprintf(&sb, "%d %s %s %d %d %d %d %s %s %s\n",
		data.CountLamps,
		formatFloat(data.Lumens),
		formatFloat(data.Multiplier),
		data.CountVerticalAngles,
		data.CountHorizontalAngles,
		data.PhotometricType,
		data.Unit,
		formatFloat(data.Width),
		formatFloat(data.Length),
		formatFloat(data.Height))

	fmt.Fprintf(&sb, "%d %d %s\n", data.Ballast, data.Version, formatFloat(data.Wattage))

	for _, angle := range data.VerticalAngles {
		sb.WriteString(formatFloat(angle))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for _, angle := range data.HorizontalAngles {
		sb.WriteString(formatFloat(angle))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	// one row of the table per horizontal angle
	valuesPerLine := len(data.VerticalAngles)
	indexInLine := 0
	for _, value := range data.CandelaValues {
		sb.WriteString(formatFloat(value))
		indexInLine++
		if indexInLine == valuesPerLine {
			sb.WriteByte('\n')
			indexInLine = 0
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
