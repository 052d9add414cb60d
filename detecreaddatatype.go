package bpwave

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "plain"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

// Ordered so that the longer signatures are checked first.
var byteCodeSigs = []struct {
	dt  DataType
	sig []byte
}{
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
	{DataTypeZ, []byte{0x1f, 0x9d}},
}

// DetectDataType sniffs the first bytes of a stream and reports which
// compression, if any, was used to produce it. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err == io.EOF {
		return DataTypeInvalid, pfx.Err(io.ErrUnexpectedEOF)
	} else if err != nil && err != io.ErrUnexpectedEOF {
		return DataTypeInvalid, pfx.Err(err)
	}
	buff = buff[:n]

	for _, v := range byteCodeSigs {
		if bytes.HasPrefix(buff, v.sig) {
			return v.dt, nil
		}
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompressReadCloserFromFile returns a reader over the decompressed
// contents of f. Uncompressed files are returned as-is. Closing the result
// does not close f.
func MaybeDecompressReadCloserFromFile(f *os.File) (io.ReadCloser, error) {
	dt, err := DetectDataType(f)
	if err != nil {
		return nil, err
	}

	// The decompressors read their headers eagerly, so rewind before handing
	// them the file.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		return gzip.NewReader(f)
	case DataTypeZip:
		zr := zipstream.NewReader(f)
		// The first entry of the archive is taken to be the table.
		if _, err := zr.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		return &readCloserFaker{zr}, nil
	case DataTypeBZip2:
		return &readCloserFaker{bzip2.NewReader(f)}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &readCloserFaker{reader}, nil
	case DataTypeZ:
		return zlib.NewReader(f)
	}

	return &readCloserFaker{f}, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
