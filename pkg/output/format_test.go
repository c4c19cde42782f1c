package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/fx-returns/internal/optimizer"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testReport() Report {
	return Report{
		Result: optimizer.Result{
			Multiplier: 6.0,
			Path: []optimizer.Step{
				{Period: 0, From: 0, To: 1, Rate: 2.0},
				{Period: 1, From: 1, To: 0, Rate: 3.0},
			},
		},
		StartValue: 1.0,
		Profit:     500.0,
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testReport())
	})

	if !strings.Contains(out, "Period | Conversion | Rate     | Value") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(out, "0 ->") {
		t.Errorf("PrettyFormat missing conversion column")
	}
	if !strings.Contains(out, "2.000000") {
		t.Errorf("PrettyFormat missing rate value")
	}
	if !strings.Contains(out, "6.000000") {
		t.Errorf("PrettyFormat missing running value")
	}
	if !strings.Contains(out, "Maximum possible return over the year: 500.00%") {
		t.Errorf("PrettyFormat missing final return line, got:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat(testReport())
	})

	if !strings.Contains(out, `"period","from","to","rate","value"`) {
		t.Errorf("CsvFormat missing header row")
	}
	if !strings.Contains(out, `"0","0","1","2.000000","2.000000"`) {
		t.Errorf("CsvFormat missing first conversion row, got:\n%s", out)
	}
	if !strings.Contains(out, `"1","1","0","3.000000","6.000000"`) {
		t.Errorf("CsvFormat missing second conversion row, got:\n%s", out)
	}
	if !strings.Contains(out, `"return","","","","500.00%"`) {
		t.Errorf("CsvFormat missing summary row, got:\n%s", out)
	}
}
