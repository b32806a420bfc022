// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package category holds the static extension table used to classify files.
//
// Categories are declared in priority order. An extension listed under more
// than one category belongs to the first one declared, so ".csv" is a
// Document, ".json" is Data and ".html" is a Script even though each also
// appears further down the table.
package category

import "strings"

// Other is the catch-all category for files no other category claims.
const Other = "Other"

// Category is a named bucket of file extensions.
type Category struct {
	Name       string
	Extensions []string
}

// table is the category list in priority order. It is never mutated.
var table = []Category{
	{"Images", []string{
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp",
		".svg", ".raw", ".ico", ".jfif", ".heic", ".heif", ".exif",
	}},
	{"Documents", []string{
		".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".epub",
		".mobi", ".xls", ".xlsx", ".ppt", ".pptx", ".csv", ".wps",
	}},
	{"Data", []string{
		".json", ".xml", ".sql", ".yaml", ".ini",
		".log", ".db", ".mdb", ".accdb", ".sav", ".dat",
	}},
	{"Scripts", []string{
		".py", ".js", ".java", ".c", ".cpp", ".c#", ".asm", ".sh",
		".bat", ".pl", ".rb", ".php", ".swift", ".go", ".r", ".lua",
		".scala", ".html", ".css",
	}},
	{"Executables", []string{
		".exe", ".msi", ".app", ".deb", ".rpm", ".apk", ".bin",
		".jar", ".cmd", ".wsf", ".vbs",
	}},
	{"Music", []string{
		".mp3", ".wav", ".ogg", ".flac", ".aac", ".wma", ".m4a",
		".opus", ".aiff", ".cda",
	}},
	{"Videos", []string{
		".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
		".mpeg", ".mpg", ".3gp", ".qt", ".ts", ".m4v", ".vob",
	}},
	{"Compressed", []string{
		".zip", ".rar", ".tar", ".gz", ".bz2", ".7z", ".xz",
		".iso", ".cab", ".dmg",
	}},
	{"Fonts", []string{
		".ttf", ".otf", ".woff", ".woff2", ".fnt", ".pfb", ".pfm",
	}},
	{"Backup", []string{
		".bak", ".old", ".backup", ".tmp", ".swp", ".part", ".dmp",
	}},
	{"Presentations", []string{
		".ppt", ".pptx", ".key", ".odp", ".sxi",
	}},
	{"Spreadsheets", []string{
		".xls", ".xlsx", ".ods", ".csv", ".tsv", ".dif", ".slk",
	}},
	{"Web Files", []string{
		".html", ".htm", ".css", ".js", ".xml", ".json",
		".csv", ".svg", ".php",
	}},
	{Other, nil},
}

// byExtension maps each extension to the first category declaring it.
var byExtension = buildIndex(table)

func buildIndex(cats []Category) map[string]string {
	idx := make(map[string]string)
	for _, c := range cats {
		for _, ext := range c.Extensions {
			if _, seen := idx[ext]; !seen {
				idx[ext] = c.Name
			}
		}
	}
	return idx
}

// All returns a copy of the category table in priority order.
func All() []Category {
	out := make([]Category, len(table))
	for i, c := range table {
		out[i] = Category{
			Name:       c.Name,
			Extensions: append([]string(nil), c.Extensions...),
		}
	}
	return out
}

// Names returns the category names in priority order, ending with Other.
func Names() []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.Name
	}
	return names
}

// Extension returns the extension of a file name, including the leading dot.
// Dots at the start of the name do not begin an extension, so ".bashrc"
// has none while "archive.tar.gz" has ".gz". A trailing dot yields ".".
func Extension(name string) string {
	stem := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(stem, '.')
	if i < 0 {
		return ""
	}
	return stem[i:]
}

// ForExtension returns the category for an extension, compared
// case-insensitively. Unknown or empty extensions map to Other.
func ForExtension(ext string) string {
	if name, ok := byExtension[strings.ToLower(ext)]; ok {
		return name
	}
	return Other
}

// Classify returns the category for a file name.
func Classify(name string) string {
	return ForExtension(Extension(name))
}

// Owners lists every category declaring ext, in priority order. Classify
// always picks the first entry.
func Owners(ext string) []string {
	ext = strings.ToLower(ext)
	var owners []string
	for _, c := range table {
		for _, e := range c.Extensions {
			if e == ext {
				owners = append(owners, c.Name)
				break
			}
		}
	}
	return owners
}
