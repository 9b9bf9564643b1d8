package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// Loader decodes audio assets relative to a base directory
type Loader struct {
	Dir string
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads and fully decodes the asset at path
// Returned errors are always *LoadError
func (l *Loader) Load(path string) (*Clip, error) {
	full := path
	if l.Dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.Dir, path)
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: full, Err: ErrAssetMissing}
		}
		return nil, &LoadError{Path: full, Err: fmt.Errorf("%w: %v", ErrAssetUnknown, err)}
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(full)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, &LoadError{Path: full, Err: fmt.Errorf("%w: unsupported extension %q", ErrAssetDecode, filepath.Ext(full))}
	}
	if err != nil {
		f.Close()
		return nil, &LoadError{Path: full, Err: fmt.Errorf("%w: %v", ErrAssetDecode, err)}
	}
	// Closing the streamer releases the file
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, &LoadError{Path: full, Err: fmt.Errorf("%w: %v", ErrAssetDecode, err)}
	}
	if buf.Len() == 0 {
		return nil, &LoadError{Path: full, Err: fmt.Errorf("%w: no samples", ErrAssetDecode)}
	}

	return NewClip(buf), nil
}
