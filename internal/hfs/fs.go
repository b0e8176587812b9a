package hfs

import (
	"io"
	"io/fs"
)

type FileInfo = fs.FileInfo
type FileMode = fs.FileMode
type DirEntry = fs.DirEntry

const ModePerm = fs.ModePerm

var ErrNotExist = fs.ErrNotExist

type File interface {
	io.ReadWriteCloser
	Stat() (FileInfo, error)
	Name() string
}

type FS interface {
	Stat(name string) (FileInfo, error)
	Lstat(name string) (FileInfo, error)
	Open(name string, flag int, perm FileMode) (File, error)
	ReadDir(name string) ([]DirEntry, error)
	Move(oldname, newname string) error
	Remove(path string) error
	Chmod(name string, mode FileMode) error
	MkdirAll(name string, mode FileMode) error
	EvalSymlinks(name string) (string, error)
	At(name string) FS
	Path(elems ...string) string
}
