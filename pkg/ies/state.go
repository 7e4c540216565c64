package ies

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseState is a state of the token reader. The states are visited in
// declaration order; the three table states repeat until their slice holds
// the expected number of values.
type ParseState int

const (
	ReadCountLamps ParseState = iota
	ReadLumens
	ReadMultiplier
	ReadCountVAngles
	ReadCountHAngles
	ReadType
	ReadUnit
	ReadWidth
	ReadLength
	ReadHeight
	ReadBallast
	ReadVersion
	ReadWattage
	ReadVerticalAngles
	ReadHorizontalAngles
	ReadCandelaValues
	EndOfParse
	StateParseFailed
)

var parseStateNames = [...]string{
	ReadCountLamps:       "READ_COUNT_LAMPS",
	ReadLumens:           "READ_LUMENS",
	ReadMultiplier:       "READ_MULTIPLIER",
	ReadCountVAngles:     "READ_COUNT_VANGLES",
	ReadCountHAngles:     "READ_COUNT_HANGLES",
	ReadType:             "READ_TYPE",
	ReadUnit:             "READ_UNIT",
	ReadWidth:            "READ_WIDTH",
	ReadLength:           "READ_LENGTH",
	ReadHeight:           "READ_HEIGHT",
	ReadBallast:          "READ_BALLAST",
	ReadVersion:          "READ_VERSION",
	ReadWattage:          "READ_WATTAGE",
	ReadVerticalAngles:   "READ_VERTICAL_ANGLES",
	ReadHorizontalAngles: "READ_HORIZONTAL_ANGLES",
	ReadCandelaValues:    "READ_CANDELA_VALUES",
	EndOfParse:           "END_OF_PARSE",
	StateParseFailed:     "PARSE_FAILED",
}

func (s ParseState) String() string {
	if s >= 0 && int(s) < len(parseStateNames) {
		return parseStateNames[s]
	}
	return fmt.Sprintf("ParseState(%d)", int(s))
}

// FirstParseState is the state the reader starts in.
const FirstParseState = ReadCountLamps

// tokenReader feeds tokens into a LightData one at a time.
type tokenReader struct {
	data  *LightData
	state ParseState
}

func newTokenReader(data *LightData) *tokenReader {
	return &tokenReader{data: data, state: FirstParseState}
}

// next consumes one token. It returns false once the reader can no longer
// accept tokens: the value did not convert, or the table is already full.
func (r *tokenReader) next(value string) bool {
	if r.state == EndOfParse || r.state == StateParseFailed {
		return false
	}
	r.state = r.read(value)
	return true
}

func (r *tokenReader) read(value string) ParseState {
	d := r.data
	switch r.state {
	case ReadCountLamps:
		return r.readInt(value, &d.CountLamps, ReadLumens)
	case ReadLumens:
		return r.readFloat(value, &d.Lumens, ReadMultiplier)
	case ReadMultiplier:
		return r.readFloat(value, &d.Multiplier, ReadCountVAngles)
	case ReadCountVAngles:
		return r.readInt(value, &d.CountVerticalAngles, ReadCountHAngles)
	case ReadCountHAngles:
		return r.readInt(value, &d.CountHorizontalAngles, ReadType)
	case ReadType:
		return r.readInt(value, &d.PhotometricType, ReadUnit)
	case ReadUnit:
		return r.readInt(value, &d.Unit, ReadWidth)
	case ReadWidth:
		return r.readFloat(value, &d.Width, ReadLength)
	case ReadLength:
		return r.readFloat(value, &d.Length, ReadHeight)
	case ReadHeight:
		return r.readFloat(value, &d.Height, ReadBallast)
	case ReadBallast:
		return r.readInt(value, &d.Ballast, ReadVersion)
	case ReadVersion:
		return r.readInt(value, &d.Version, ReadWattage)
	case ReadWattage:
		return r.readFloat(value, &d.Wattage, ReadVerticalAngles)
	case ReadVerticalAngles:
		return r.readSeries(value, &d.VerticalAngles, d.CountVerticalAngles, ReadHorizontalAngles)
	case ReadHorizontalAngles:
		return r.readSeries(value, &d.HorizontalAngles, d.CountHorizontalAngles, ReadCandelaValues)
	case ReadCandelaValues:
		return r.readSeries(value, &d.CandelaValues, d.CountVerticalAngles*d.CountHorizontalAngles, EndOfParse)
	default:
		return StateParseFailed
	}
}

func (r *tokenReader) readInt(value string, dst *int, next ParseState) ParseState {
	v, ok := readInt(value)
	if !ok {
		return StateParseFailed
	}
	*dst = v
	return next
}

func (r *tokenReader) readFloat(value string, dst *float64, next ParseState) ParseState {
	v, ok := readFloat(value)
	if !ok {
		return StateParseFailed
	}
	*dst = v
	return next
}

// readSeries appends value to dst and stays in the current state until dst
// holds want values.
func (r *tokenReader) readSeries(value string, dst *[]float64, want int, next ParseState) ParseState {
	v, ok := readFloat(value)
	if !ok {
		return StateParseFailed
	}
	*dst = append(*dst, v)
	if len(*dst) == want {
		return next
	}
	return r.state
}

// readInt converts the leading integer of s, ignoring whatever follows it.
// strconv never consults the process locale.
func readInt(s string) (int, bool) {
	end := scanSign(s, 0)
	digits := scanDigits(s, end)
	if digits == end {
		return 0, false
	}
	v, err := strconv.Atoi(s[:digits])
	if err != nil {
		// out of range, saturate like strtol
		if s[0] == '-' {
			return minInt, true
		}
		return maxInt, true
	}
	return v, true
}

// readFloat converts the leading decimal number of s, ignoring whatever
// follows it. The decimal separator is always '.'.
func readFloat(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	i := scanSign(s, 0)
	intEnd := scanDigits(s, i)
	end := intEnd
	mantissa := intEnd > i
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1)
		if fracEnd > end+1 || mantissa {
			mantissa = true
			end = fracEnd
		}
	}
	if !mantissa {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		expStart := scanSign(s, end+1)
		if expEnd := scanDigits(s, expStart); expEnd > expStart {
			end = expEnd
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range: v is already ±Inf or 0, as strtod returns
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func scanSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
