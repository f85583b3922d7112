package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

// Page describes the irdiff command for the md, man and tldr generators.
type Page struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	More        string `yaml:"more,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Page
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Suffix   string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	data, err := os.ReadFile(filepath.Join(docs, "templates", "irdiff.yaml"))
	if err != nil {
		panic(err)
	}

	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		panic(err)
	}

	sort.Slice(page.Flags, func(i, j int) bool {
		return page.Flags[i].ID < page.Flags[j].ID
	})

	metadata := TemplateData{
		Page:    page,
		Date:    time.Now().Format("January 2, 2006"),
		Version: getVersion(),
	}

	types := []Outputs{
		{Template: "irdiff.md.tmpl", Folder: "commands", Suffix: ".md"},
		{Template: "irdiff.man.tmpl", Folder: filepath.Join("man", "share", "man1"), Suffix: ".1"},
		{Template: "irdiff.tldr.tmpl", Folder: "tldr", Suffix: ".md"},
	}

	for _, t := range types {
		if err := render(filepath.Join(docs, "templates", t.Template), filepath.Join(docs, t.Folder), page.ID+t.Suffix, metadata); err != nil {
			panic(err)
		}
	}
}

// render executes one template into folder/name.
func render(tmplPath string, folder string, name string, metadata TemplateData) error {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return err
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return err
	}

	target := filepath.Join(folder, name)
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Println("Generating", target)
	return tmpl.Execute(file, metadata)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
