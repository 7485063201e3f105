// Package zipreader opens a Hunspell dictionary file that may live either
// as a plain file on disk or as one entry inside a .zip archive (the
// LibreOffice/OpenOffice extension packaging). The bytes are returned as
// stored; a leading UTF-8 BOM is stripped by the aff and dic readers, not
// here. Grounded on
// spyll.hunspell.readers.file_reader.FileReader/ZipReader.
package zipreader

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Open opens a plain file at path for reading.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zipreader: %w", err)
	}
	return f, nil
}

// ListEntries returns the names of every entry in the zip archive at
// zipPath, so a caller can pick out the single .aff/.dic pair it contains
// (an .oxt/.xpi dictionary extension bundles other files alongside them).
func ListEntries(zipPath string) ([]string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("zipreader: %w", err)
	}
	defer zr.Close()
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// OpenZip opens the entry named inner inside the zip archive at zipPath.
func OpenZip(zipPath, inner string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("zipreader: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == inner {
			rc, err := f.Open()
			if err != nil {
				zr.Close()
				return nil, fmt.Errorf("zipreader: %w", err)
			}
			return &zipEntry{rc: rc, archive: zr}, nil
		}
	}
	zr.Close()
	return nil, fmt.Errorf("zipreader: no entry %q in %s", inner, zipPath)
}

// zipEntry closes both the entry reader and the archive it came from.
type zipEntry struct {
	rc      io.ReadCloser
	archive *zip.ReadCloser
}

func (z *zipEntry) Read(p []byte) (int, error) { return z.rc.Read(p) }

func (z *zipEntry) Close() error {
	err := z.rc.Close()
	if cerr := z.archive.Close(); err == nil {
		err = cerr
	}
	return err
}
