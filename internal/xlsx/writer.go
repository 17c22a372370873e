package xlsx

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrNoSheets reports a write call with an empty sheet list. No file
// is created in that case.
var ErrNoSheets = errors.New("no sheets to write")

// WriteWorkbook assembles sheets into an XLSX file at path. Parent
// directories are created and an existing file is overwritten. The
// workbook is written to a temporary file beside the target and
// renamed into place, so a failure partway through never leaves a
// truncated file at path.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp-%s", path, uuid.New().String()[:8])
	if err := writeArchive(tmpPath, sheets); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tmpPath, removeErr)
		}
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tmpPath, removeErr)
		}
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}

	return nil
}

// writeArchive renders every part and writes the zip container. Entry
// order is fixed so identical input produces an identical archive
// layout.
func writeArchive(path string, sheets []Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook file: %w", err)
	}

	zw := zip.NewWriter(f)

	sheetNames := make([]string, len(sheets))
	for i, sheet := range sheets {
		sheetNames[i] = sheet.Name
	}

	type part struct {
		name    string
		content string
	}

	entries := make([]part, 0, len(sheets)+7)
	for i, sheet := range sheets {
		entries = append(entries, part{fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), sheetXML(sheet)})
	}
	entries = append(entries,
		part{"xl/workbook.xml", workbookXML(sheetNames)},
		part{"xl/_rels/workbook.xml.rels", workbookRelsXML(len(sheets))},
		part{"xl/styles.xml", stylesXML()},
		part{"[Content_Types].xml", contentTypesXML(len(sheets))},
		part{"_rels/.rels", packageRelsXML()},
		part{"docProps/app.xml", appXML(sheetNames)},
		part{"docProps/core.xml", coreXML(time.Now())},
	)

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to create archive entry %s: %w", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to write archive entry %s: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync workbook file: %w", err)
	}
	return f.Close()
}
