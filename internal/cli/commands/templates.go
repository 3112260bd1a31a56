package commands

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:templates
var templateFS embed.FS

// scaffoldRenames maps embedded file names to their on-disk names.
// go:embed refuses dotfiles, so they ship without the leading dot.
var scaffoldRenames = map[string]string{
	"gitignore": ".gitignore",
}

// copyTemplate writes an embedded scaffold directory into targetDir.
// Existing files are left alone unless force is set.
func copyTemplate(templateName, targetDir string, force bool) error {
	root := filepath.Join("templates", templateName)

	return fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return err
		}

		target := filepath.Join(targetDir, scaffoldName(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0750)
		}
		if !force {
			if _, err := os.Stat(target); err == nil {
				return nil
			}
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0600)
	})
}

// scaffoldName applies the dotfile renames to a scaffold-relative path.
func scaffoldName(rel string) string {
	base := filepath.Base(rel)
	if renamed, ok := scaffoldRenames[base]; ok {
		return filepath.Join(filepath.Dir(rel), renamed)
	}
	return rel
}

// listTemplateFiles returns the on-disk names a scaffold produces, for
// the init summary.
func listTemplateFiles(templateName string) ([]string, error) {
	var files []string
	root := filepath.Join("templates", templateName)

	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files = append(files, scaffoldName(rel))
		return nil
	})
	return files, err
}
