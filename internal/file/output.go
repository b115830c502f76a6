package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/shiromc/midiconverter/internal/processor"
)

// OutputName derives the output file name from the input file name: its stem plus the format extension,
// in the current directory.
func OutputName(input string, format processor.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, EncryptedSuffix)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + format.Ext()
}

// WriteSong encodes the song into the named file.
// The file is replaced atomically, so a failed write never leaves a partial document behind.
func WriteSong(name string, song *processor.Song, format processor.Format, pretty bool) error {
	f, err := renameio.NewPendingFile(name, renameio.WithTempDir(filepath.Dir(name)), renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("%w: could not create %v: %v", ErrOutputWrite, name, err)
	}
	defer f.Cleanup()
	err = song.Encode(f, format, pretty)
	if err != nil {
		return fmt.Errorf("%w: could not write %v: %v", ErrOutputWrite, name, err)
	}
	err = f.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("%w: could not replace %v: %v", ErrOutputWrite, name, err)
	}
	return nil
}
