package hfs

import (
	"os"
	"path/filepath"
)

func NewOS(root string) OS {
	return OS{root: root}
}

type OS struct {
	root string
}

var _ FS = (*OS)(nil)
var _ FileReader = (*OS)(nil)

func (osfs OS) join(name string) string {
	if name == "" {
		return osfs.root
	}

	if filepath.IsAbs(name) {
		return name
	}

	if osfs.root == "" {
		return name
	}

	return filepath.Join(osfs.root, name)
}

func (osfs OS) At(name string) FS {
	osfs.root = osfs.join(name)

	return osfs
}

func (osfs OS) Stat(name string) (FileInfo, error) {
	return os.Stat(osfs.join(name))
}

func (osfs OS) Lstat(name string) (FileInfo, error) {
	return os.Lstat(osfs.join(name))
}

func (osfs OS) Open(name string, flag int, perm FileMode) (File, error) {
	return os.OpenFile(osfs.join(name), flag, perm)
}

func (osfs OS) Move(oldname, newname string) error {
	return os.Rename(osfs.join(oldname), osfs.join(newname))
}

// EvalSymlinks returns the path name refers to once every symlink is resolved.
func (osfs OS) EvalSymlinks(name string) (string, error) {
	return filepath.EvalSymlinks(osfs.join(name))
}

func (osfs OS) Remove(path string) error {
	return os.Remove(osfs.join(path))
}

func (osfs OS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(osfs.join(name), mode)
}

func (osfs OS) MkdirAll(name string, mode os.FileMode) error {
	return os.MkdirAll(osfs.join(name), mode)
}

func (osfs OS) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(osfs.join(filename))
}

// ReadDir returns the entries of the directory sorted by filename.
func (osfs OS) ReadDir(name string) ([]DirEntry, error) {
	return os.ReadDir(osfs.join(name))
}

func (osfs OS) Path(elems ...string) string {
	args := []string{osfs.root}
	args = append(args, elems...)

	return filepath.Join(args...)
}
