package hfs

import (
	"io"
	"os"
	"path/filepath"
)

func Exists(fs FS, filename string) bool {
	_, err := fs.Lstat(filename)
	return err == nil
}

func Open(fs FS, filename string) (File, error) {
	return fs.Open(filename, os.O_RDONLY, 0)
}

type FileReader interface {
	ReadFile(filename string) ([]byte, error)
}

func ReadFile(fs FS, filename string) ([]byte, error) {
	if fr, ok := fs.(FileReader); ok {
		return fr.ReadFile(filename)
	}

	f, err := Open(fs, filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func WriteFile(fs FS, filename string, b []byte, mode FileMode) error {
	f, err := Create(fs, filename)
	if err != nil {
		return err
	}

	_, err = f.Write(b)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	return fs.Chmod(filename, mode)
}

func Create(fs FS, filename string) (File, error) {
	err := CreateParentDir(fs, filename)
	if err != nil {
		return nil, err
	}

	return fs.Open(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

func CreateParentDir(fs FS, path string) error {
	path = fs.Path(path)
	if dir := filepath.Dir(path); dir != "." {
		err := fs.At(dir).MkdirAll("", ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}
