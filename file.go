package files

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/logging"
)

// File is a handle to a file.
type File struct {
	location
}

// NewFile returns a handle to the existing file at p. p may be absolute,
// relative to the current directory, or start with "~".
func NewFile(p string, opts ...Option) (*File, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	l, err := resolve(p, backend.KindFile, cfg)
	if err != nil {
		return nil, err
	}
	return &File{l}, nil
}

// Read returns the contents of the file.
func (f *File) Read() ([]byte, error) {
	data, err := f.backend.ReadBytes(f.backendPath())
	if err != nil {
		return nil, readError(f.path, ReasonReadFailed, err)
	}
	return data, nil
}

// ReadString returns the contents decoded as UTF-8. Invalid UTF-8 fails with
// ReasonDecodingFailed.
func (f *File) ReadString() (string, error) {
	return f.ReadStringEncoding(unicode.UTF8)
}

// ReadStringEncoding returns the contents decoded with enc.
func (f *File) ReadStringEncoding(enc encoding.Encoding) (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	s, err := decode(data, enc)
	if err != nil {
		return "", readError(f.path, ReasonDecodingFailed, err)
	}
	return s, nil
}

// ReadInt parses the contents, with surrounding whitespace removed, as a
// base 10 integer.
func (f *File) ReadInt() (int, error) {
	s, err := f.ReadString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, readError(f.path, ReasonNotANumber, err)
	}
	return n, nil
}

// ReadFloat parses the contents, with surrounding whitespace removed, as a
// floating point number.
func (f *File) ReadFloat() (float64, error) {
	s, err := f.ReadString()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, readError(f.path, ReasonNotANumber, err)
	}
	return n, nil
}

// MIMEType sniffs the media type of the contents, for example
// "text/plain; charset=utf-8" or "image/png".
func (f *File) MIMEType() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	return mimetype.Detect(data).String(), nil
}

// DetectEncoding guesses the character set of the contents and returns its
// IANA name, for example "UTF-8" or "ISO-8859-1".
func (f *File) DetectEncoding() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	return f.detect(data)
}

// ReadStringDetected decodes the contents with the character set guessed by
// DetectEncoding.
func (f *File) ReadStringDetected() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	charset, err := f.detect(data)
	if err != nil {
		return "", err
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", readError(f.path, ReasonDecodingFailed, fmt.Errorf("unsupported charset %q: %w", charset, err))
	}
	s, err := decode(data, enc)
	if err != nil {
		return "", readError(f.path, ReasonDecodingFailed, err)
	}
	return s, nil
}

func (f *File) detect(data []byte) (string, error) {
	if len(data) == 0 {
		return "UTF-8", nil
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", readError(f.path, ReasonDecodingFailed, err)
	}
	return result.Charset, nil
}

// Write replaces the contents of the file. The file must still exist.
func (f *File) Write(data []byte) error {
	if err := f.validate(); err != nil {
		return writeError(f.path, ReasonWriteFailed, err)
	}
	if err := f.backend.WriteBytes(f.backendPath(), data); err != nil {
		return writeError(f.path, ReasonWriteFailed, err)
	}
	f.logger.Debug("wrote", logging.Path(f.path))
	return nil
}

// WriteString replaces the contents with s encoded as UTF-8.
func (f *File) WriteString(s string) error {
	return f.WriteStringEncoding(s, unicode.UTF8)
}

// WriteStringEncoding replaces the contents with s encoded with enc. Runes
// enc cannot represent fail with ReasonEncodingFailed.
func (f *File) WriteStringEncoding(s string, enc encoding.Encoding) error {
	data, err := encode(s, enc)
	if err != nil {
		return writeError(f.path, ReasonEncodingFailed, err)
	}
	return f.Write(data)
}

// Append adds data to the end of the file.
func (f *File) Append(data []byte) error {
	if err := f.backend.AppendBytes(f.backendPath(), data); err != nil {
		return writeError(f.path, ReasonWriteFailed, err)
	}
	f.logger.Debug("appended", logging.Path(f.path))
	return nil
}

// AppendString adds s, encoded as UTF-8, to the end of the file.
func (f *File) AppendString(s string) error {
	data, err := encode(s, unicode.UTF8)
	if err != nil {
		return writeError(f.path, ReasonEncodingFailed, err)
	}
	return f.Append(data)
}

// Copy duplicates the file into to and returns a handle to the copy.
func (f *File) Copy(to *Folder) (*File, error) {
	p, err := f.copyTo(to)
	if err != nil {
		return nil, err
	}
	return &File{f.child(p, backend.KindFile)}, nil
}

// ManagedBy returns a handle to the file at the same path in b.
func (f *File) ManagedBy(b backend.Backend) (*File, error) {
	l, err := f.managedBy(b)
	if err != nil {
		return nil, err
	}
	return &File{l}, nil
}

func decode(data []byte, enc encoding.Encoding) (string, error) {
	if enc == nil || enc == unicode.UTF8 {
		out, _, err := transform.Bytes(unicode.UTF8Validator, data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func encode(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || enc == unicode.UTF8 {
		out, _, err := transform.String(unicode.UTF8Validator, s)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

var _ Location = (*File)(nil)
