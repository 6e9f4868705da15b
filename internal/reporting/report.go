package reporting

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"gomultitool/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Session is what a report covers: the recent reachability checks and the
// simulator's address table as it stood at exit.
type Session struct {
	Started   time.Time
	Toolchain string
	Probes    []models.ProbeResult
	Entries   []models.Entry
}

type probeRow struct {
	Time      string
	Host      string
	Address   string
	Reachable bool
	Millis    int64
	Method    string
}

type reportData struct {
	Title     string
	Date      string
	Duration  string
	Toolchain string
	Total     int
	Reachable int
	Probes    []probeRow
	Entries   []models.Entry
}

var sessionTemplate = template.Must(template.New("session").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: sans-serif; margin: 20px; color: #333; }
        h1, h2 { color: #2c3e50; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        .summary { background: #eef; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .down { color: #d9534f; font-weight: bold; }
    </style>
</head>
<body>
    <h1>Multi-Tool Session Report</h1>
    <div class="summary">
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Session length:</strong> {{.Duration}}</p>
        <p><strong>Toolchain:</strong> {{.Toolchain}}</p>
        <p><strong>Checks:</strong> {{.Total}} ({{.Reachable}} reachable)</p>
    </div>

    <h2>Reachability Checks</h2>
    <table>
        <thead>
            <tr>
                <th>Time</th>
                <th>Host</th>
                <th>Address</th>
                <th>Result</th>
                <th>Response (ms)</th>
                <th>Probe</th>
            </tr>
        </thead>
        <tbody>
{{- range .Probes}}
            <tr><td>{{.Time}}</td><td>{{.Host}}</td><td>{{.Address}}</td>{{if .Reachable}}<td>reachable</td>{{else}}<td class="down">not reachable</td>{{end}}<td>{{.Millis}}</td><td>{{.Method}}</td></tr>
{{- else}}
            <tr><td colspan="6">No checks run during this session.</td></tr>
{{- end}}
        </tbody>
    </table>

    <h2>ARP Table</h2>
    <table>
        <thead>
            <tr>
                <th>IP Address</th>
                <th>MAC Address</th>
            </tr>
        </thead>
        <tbody>
{{- range .Entries}}
            <tr><td>{{.Address}}</td><td>{{.HardwareAddr}}</td></tr>
{{- end}}
        </tbody>
    </table>
</body>
</html>
`))

// GenerateSessionReport writes a report of the session into dir and returns
// the file's path. Currently supports "html" format.
func GenerateSessionReport(s Session, format, dir string) (string, error) {
	if format != "html" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	now := time.Now()
	timestamp := now.Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("report_%s.html", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := sessionTemplate.Execute(file, buildData(s, now)); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return filename, nil
}

func buildData(s Session, now time.Time) reportData {
	data := reportData{
		Title:     "Multi-Tool Session Report - " + now.Format("20060102_150405"),
		Date:      now.Format(time.RFC1123),
		Toolchain: s.Toolchain,
		Total:     len(s.Probes),
		Entries:   s.Entries,
	}

	if !s.Started.IsZero() {
		data.Duration = now.Sub(s.Started).Round(time.Second).String()
	}

	for _, p := range s.Probes {
		if p.Reachable {
			data.Reachable++
		}

		data.Probes = append(data.Probes, probeRow{
			Time:      p.Timestamp.Format("15:04:05"),
			Host:      p.Host,
			Address:   p.Address,
			Reachable: p.Reachable,
			Millis:    p.ElapsedMillis(),
			Method:    string(p.Method),
		})
	}

	return data
}
