package asciidoc

import "github.com/spf13/afero"

// FS is the filesystem the Include Resolver reads through. It is
// satisfied directly by afero.Fs, letting callers pass afero.NewOsFs()
// for real parses and afero.NewMemMapFs() for hermetic tests and
// fixtures, per the teacher's use of afero as a virtual filesystem
// abstraction.
type FS = afero.Fs

func defaultFS() FS {
	return afero.NewOsFs()
}
