package pattern

import "github.com/pkg/errors"

// Failure categories. Decoders wrap these with position details; match them with errors.Is.
var (
	ErrFileOpen           = errors.New("could not open or read input file")
	ErrEmptyInput         = errors.New("input contains no data")
	ErrUnknownFormat      = errors.New("unknown file format")
	ErrLineTooLong        = errors.New("line too long")
	ErrPatternTooWide     = errors.New("pattern too wide for the grid")
	ErrPatternTooTall     = errors.New("pattern too tall for the grid")
	ErrPatternTooLarge    = errors.New("pattern too large for the grid")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrMalformedLine      = errors.New("malformed coordinate line")
	ErrNegativeCoordinate = errors.New("negative coordinate")
	ErrMissingDimensions  = errors.New("missing dimension line")
	ErrColumnOverflow     = errors.New("column overflow")
	ErrRowOverflow        = errors.New("row overflow")
	ErrInvalidToken       = errors.New("invalid token")
)

var categories = []struct {
	err  error
	name string
}{
	{ErrFileOpen, "FileOpenFailure"},
	{ErrEmptyInput, "EmptyInput"},
	{ErrUnknownFormat, "UnknownFormat"},
	{ErrLineTooLong, "LineTooLong"},
	{ErrPatternTooWide, "PatternTooWide"},
	{ErrPatternTooTall, "PatternTooTall"},
	{ErrPatternTooLarge, "PatternTooLarge"},
	{ErrInvalidCharacter, "InvalidCharacter"},
	{ErrMalformedLine, "MalformedCoordinateLine"},
	{ErrNegativeCoordinate, "NegativeCoordinate"},
	{ErrMissingDimensions, "MissingDimensions"},
	{ErrColumnOverflow, "ColumnOverflow"},
	{ErrRowOverflow, "RowOverflow"},
	{ErrInvalidToken, "InvalidToken"},
}

// Category names the failure category of err, or returns "" for errors outside the taxonomy
func Category(err error) string {
	for _, c := range categories {
		if errors.Is(err, c.err) {
			return c.name
		}
	}
	return ""
}
