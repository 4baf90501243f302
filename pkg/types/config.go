package types

// Config holds the settings for a split run. Values come from
// certsplit.yaml, CERTSPLIT_* environment variables, or command-line
// flags, with flags taking precedence.
type Config struct {
	// PatternsFile is the path to the user-editable pattern file
	// (default "patrones.txt").
	PatternsFile string `json:"patterns_file" yaml:"patterns_file"`

	// InputDir is the directory scanned for input PDFs (default "entrada").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory individual certificates are written to
	// (default "salida"). Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// NameListPath is an optional .xlsx or .csv file whose first column
	// supplies one recipient name per page, in page order.
	NameListPath string `json:"name_list,omitempty" yaml:"name_list,omitempty"`

	// Prefix is prepended to every output filename.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Suffix is appended to every output filename, before the .pdf extension.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	// CleanOutput removes existing PDFs from the output directory before
	// a directory run.
	CleanOutput bool `json:"clean_output" yaml:"clean_output"`

	// RemoveInput deletes an input PDF after all of its pages were
	// written successfully.
	RemoveInput bool `json:"remove_input" yaml:"remove_input"`

	// ReportDir is where the run-history database and YAML export live
	// (default "report").
	ReportDir string `json:"report_dir" yaml:"report_dir"`
}
