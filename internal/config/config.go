package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nguyentantai21042004/doc-triage/internal/logger"
)

const (
	ModeLocal = "local"
	ModeAI    = "ai"
)

var supportedFormats = []string{"md", "docx", "json"}

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	Metadata    MetadataConfig    `yaml:"metadata"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Extract     ExtractConfig     `yaml:"extract"`
	Report      ReportConfig      `yaml:"report"`
}

type SummaryConfig struct {
	Sentences int    `yaml:"sentences"`
	Mode      string `yaml:"mode"`
}

// MetadataConfig overrides the placeholder auxiliary fields when any is set.
type MetadataConfig struct {
	RelevanceToOfficials []string `yaml:"relevance_to_officials"`
	ActionItems          []string `yaml:"action_items"`
	ConfidenceEstimate   string   `yaml:"confidence_estimate"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type GeminiConfig struct {
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	// APIKeys come from GEMINI_API_KEYS or GEMINI_API_KEY, never from the file.
	APIKeys []string `yaml:"-"`
}

type ExtractConfig struct {
	PDFToTextBinary   string        `yaml:"pdftotext_binary"`
	PDFToTextFallback bool          `yaml:"pdftotext_fallback"`
	PDFToTextTimeout  time.Duration `yaml:"pdftotext_timeout"`
}

type ReportConfig struct {
	Formats []string `yaml:"formats"`
}

// HasMetadata reports whether the file overrides any auxiliary field.
func (m MetadataConfig) HasMetadata() bool {
	return len(m.RelevanceToOfficials) > 0 || len(m.ActionItems) > 0 || m.ConfidenceEstimate != ""
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Summary.Sentences < 0 {
		return fmt.Errorf("summary.sentences must not be negative")
	}

	c.Summary.Mode = strings.ToLower(strings.TrimSpace(c.Summary.Mode))
	switch c.Summary.Mode {
	case "":
		c.Summary.Mode = ModeLocal
	case ModeLocal, ModeAI:
	default:
		return fmt.Errorf("summary.mode must be %q or %q, got %q", ModeLocal, ModeAI, c.Summary.Mode)
	}

	for i, format := range c.Report.Formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if !slices.Contains(supportedFormats, format) {
			return fmt.Errorf("report.formats: unsupported format %q", format)
		}
		c.Report.Formats[i] = format
	}

	if c.Summary.Sentences == 0 {
		c.Summary.Sentences = 5
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 2 * time.Minute
	}
	if c.Extract.PDFToTextBinary == "" {
		c.Extract.PDFToTextBinary = "pdftotext"
	}
	if c.Extract.PDFToTextTimeout == 0 {
		c.Extract.PDFToTextTimeout = 30 * time.Second
	}
	if len(c.Report.Formats) == 0 {
		c.Report.Formats = []string{"md", "json"}
	}

	return nil
}
