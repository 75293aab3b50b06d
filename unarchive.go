package main

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// unpackArchive unpacks a zip/gz/lz4 archived dataset export next to the
// archive and returns the path of the unpacked file. Returns "" for plain
// files. The source archive is left in place.
func unpackArchive(filePath string) (string, error) {
	ext := filepath.Ext(filePath)
	switch ext {
	case ".zip":
		return unpackZipArchive(filePath)
	case ".gz":
		return unpackGzipArchive(filePath)
	case ".lz4":
		return unpackLZ4Archive(filePath)
	}
	return "", nil
}

func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// The export tool wraps a single CSV; if the archive holds more, take
	// the largest file.
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", fmt.Errorf("no files in archive %s", filePath)
	}

	destPath := filepath.Join(filepath.Dir(filePath), filepath.Base(largestFile.Name))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	_, err = io.Copy(outFile, rc)
	if err != nil {
		return "", err
	}

	return destPath, nil
}

func unpackGzipArchive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	destPath := strings.TrimSuffix(filePath, ".gz")
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, gr)
	if err != nil {
		return "", err
	}

	return destPath, nil
}

func unpackLZ4Archive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	destPath := strings.TrimSuffix(filePath, ".lz4")
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, lz4.NewReader(file))
	if err != nil {
		return "", err
	}

	return destPath, nil
}
