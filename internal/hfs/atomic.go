package hfs

import (
	"errors"

	"github.com/scem/paramrename/internal/hinstance"
	"github.com/scem/paramrename/internal/hrand"
)

func processUniquePath(p string) string {
	return p + "_tmp_" + hinstance.UID + "_" + hrand.Str(7)
}

// AtomicFile writes to a temporary sibling of name, which replaces name on Close.
type AtomicFile struct {
	tmpname string
	name    string
	fs      FS
	File
}

func (f *AtomicFile) Close() error {
	defer f.fs.Remove(f.tmpname) //nolint:errcheck

	err := f.File.Close()
	if err != nil {
		return err
	}

	return f.fs.Move(f.tmpname, f.name)
}

// Discard drops the temporary file, leaving name untouched.
func (f *AtomicFile) Discard() error {
	err := f.File.Close()

	return errors.Join(err, f.fs.Remove(f.tmpname))
}

func AtomicCreate(fs FS, name string) (*AtomicFile, error) {
	tmpname := processUniquePath(name)

	f, err := Create(fs, tmpname)
	if err != nil {
		return nil, err
	}

	return &AtomicFile{
		tmpname: tmpname,
		name:    name,
		fs:      fs,
		File:    f,
	}, nil
}

// AtomicWriteFile replaces the content of filename with b, giving it mode.
// Readers observe either the previous content or b, never a partial write.
func AtomicWriteFile(fs FS, filename string, b []byte, mode FileMode) error {
	f, err := AtomicCreate(fs, filename)
	if err != nil {
		return err
	}

	err = fs.Chmod(f.tmpname, mode)
	if err != nil {
		return errors.Join(err, f.Discard())
	}

	_, err = f.Write(b)
	if err != nil {
		return errors.Join(err, f.Discard())
	}

	return f.Close()
}
