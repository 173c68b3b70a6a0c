package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/cli/styles"
	"github.com/bnema/dumbwm/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsList     bool
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View window manager logs",
	Long: `View the dumbwm log file written when logging.enable_file_log is set.

Examples:
  dumbwm logs              # Show the last 50 lines
  dumbwm logs -f           # Follow the log in real-time
  dumbwm logs -n 200       # Show the last 200 lines
  dumbwm logs --list       # List the active file and rotated backups`,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear rotated log files",
	Long: `Remove rotated log backups older than logging.max_age days.
Use --all to remove every backup. The active log file is kept.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsCmd.Flags().BoolVar(&logsList, "list", false, "list log files")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all rotated logs")
}

// LogFile describes one file in the log directory.
type LogFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	logDir := app.Config.Logging.LogDir

	if logsList {
		return listLogFiles(logDir, app.Theme)
	}

	logPath := filepath.Join(logDir, logging.DefaultLogName)
	if _, err := os.Stat(logPath); errors.Is(err, os.ErrNotExist) {
		fmt.Println(app.Theme.Subtle.Render("No log file at " + logPath))
		if !app.Config.Logging.EnableFileLog {
			fmt.Println(app.Theme.Subtle.Render("Set logging.enable_file_log = true to write one."))
		}
		return nil
	}

	if err := showLog(logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()
	return tailLog(ctx, logPath, app.Theme)
}

// getLogFiles lists the active log and its rotated backups, newest first.
func getLogFiles(logDir string) ([]LogFile, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []LogFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logging.DefaultLogName) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFile{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Active:  name == logging.DefaultLogName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Active != files[j].Active {
			return files[i].Active
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

func listLogFiles(logDir string, theme *styles.Theme) error {
	files, err := getLogFiles(logDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(theme.Subtle.Render("No log files in " + logDir))
		return nil
	}

	fmt.Println(theme.Subtle.Render(logDir))
	for _, f := range files {
		name := theme.Normal.Render(f.Name)
		if f.Active {
			name = theme.Highlight.Render(f.Name) + " " + theme.AccentBadge("active")
		}
		fmt.Printf("  %s  %s  %s\n",
			name,
			theme.MutedBadge(formatSize(f.Size)),
			theme.TimeBadge(f.ModTime),
		)
	}
	return nil
}

// showLog displays the last N lines of a log file.
func showLog(logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	for _, line := range lastLines(file, lines) {
		fmt.Println(colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines keeps a ring of the final n lines of r.
func lastLines(r io.Reader, n int) []string {
	if n <= 0 {
		return nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	return ring
}

// tailLog follows a log file until ctx is done.
func tailLog(ctx context.Context, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}

		fmt.Println(colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
		pending = ""
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for console logs
	switch {
	case containsAny(line, "ERR", "error"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "warn"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "debug"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	files, err := getLogFiles(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}

	maxAge := app.Config.Logging.MaxAge
	cutoff := time.Now().AddDate(0, 0, -maxAge)
	removed := 0

	for _, f := range files {
		if f.Active || (!logsClearAll && (maxAge == 0 || f.ModTime.After(cutoff))) {
			continue
		}
		if err := os.Remove(f.Path); err != nil {
			fmt.Printf("%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), f.Name, err)
			continue
		}
		fmt.Printf("%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
		removed++
	}

	if removed == 0 {
		fmt.Println(app.Theme.Subtle.Render("No rotated logs to clear"))
		return nil
	}
	fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", removed)))
	return nil
}

// formatSize renders a byte count with a binary unit.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
