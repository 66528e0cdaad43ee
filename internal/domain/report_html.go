package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	m "covsight.dev/pkg/covsight/internal/model"
)

var (
	//go:embed static/report.html.tmpl
	reportTemplateSource string

	//go:embed static/report_viewer.css
	reportViewerCSS string

	//go:embed static/report_viewer.js
	reportViewerJS string

	reportTemplate = template.Must(template.New("report").Parse(reportTemplateSource))
)

type reportPage struct {
	Style  template.CSS
	Data   template.JS
	Script template.JS
}

// RenderHTML produces the self-contained HTML document for report. The
// payload is embedded as a script literal bound to `data`, which the viewer
// script reads on load.
func RenderHTML(report m.CoverageReport) ([]byte, error) {
	payload, err := ToStringSafe(report)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	// #nosec G203 - payload is escaped by ToStringSafe, assets are embedded
	err = reportTemplate.Execute(&buf, reportPage{
		Style:  template.CSS(reportViewerCSS),
		Data:   template.JS(payload),
		Script: template.JS(reportViewerJS),
	})
	if err != nil {
		return nil, encodingError(fmt.Errorf("render html template: %w", err))
	}

	return buf.Bytes(), nil
}
