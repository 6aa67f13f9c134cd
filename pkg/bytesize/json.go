package bytesize

import (
	"strconv"
	"strings"
)

// JSON carries the raw count as a number so quantities round-trip exactly;
// a quoted value is accepted on the way in and handed to the parser, which
// also covers human-edited config files ("1.5MB").

// MarshalJSON encodes the raw byte count as a JSON number.
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(b.count, 10)), nil
}

// UnmarshalJSON accepts either a JSON number (raw count) or a string in any
// format Parse understands.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		parsed, err := Parse(unquoted)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	}

	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*b = New(count)
	return nil
}

// MarshalText renders the human-readable form, e.g. "1.5 KB".
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses the human-readable form with DefaultSeparators.
func (b *ByteSize) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON encodes the raw bytes-per-second count as a JSON number.
func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(r.count, 10)), nil
}

// UnmarshalJSON accepts either a JSON number (raw count) or a string in any
// format ParseRate understands.
func (r *Rate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		parsed, err := ParseRate(unquoted)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*r = NewRate(count)
	return nil
}

// MarshalText renders the human-readable form, e.g. "1.5 KB/s".
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses the human-readable form with DefaultSeparators.
func (r *Rate) UnmarshalText(text []byte) error {
	parsed, err := ParseRate(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
