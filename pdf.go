package policygen

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/ElSguidge/policygen/internal/fileutil"
	"github.com/ElSguidge/policygen/internal/process"
)

// DefaultPDFTimeout bounds page loading when the context has no deadline.
const DefaultPDFTimeout = 30 * time.Second

// footerReserve is added to the bottom margin when a footer is printed.
const footerReserve = 0.3

// PDFFooter is printed at the bottom of every page.
type PDFFooter struct {
	Text           string
	ShowPageNumber bool
}

// PDFOptions configures one rendering.
type PDFOptions struct {
	Page   PageSettings
	Footer *PDFFooter
}

// PDFRenderer prints HTML to PDF with headless Chrome via go-rod.
// The browser starts on first use and is reused until Close. A renderer
// serializes its own calls; use one renderer per worker for parallelism.
//
// ROD_BROWSER_BIN selects a pre-installed browser; otherwise rod downloads
// Chromium on first run. ROD_NO_SANDBOX=1 disables the Chrome sandbox.
type PDFRenderer struct {
	mu       sync.Mutex
	timeout  time.Duration
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPDFRenderer creates a renderer. A timeout <= 0 uses DefaultPDFTimeout.
func NewPDFRenderer(timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &PDFRenderer{timeout: timeout}
}

// Render converts a complete HTML document to PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, htmlContent string, opts PDFOptions) ([]byte, error) {
	if err := opts.Page.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	defer cleanup()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderFile(ctx, path, opts)
}

func (r *PDFRenderer) renderFile(ctx context.Context, path string, opts PDFOptions) ([]byte, error) {
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	stream, err := page.Context(ctx).PDF(printOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// ensureBrowser launches and connects to Chrome if not yet running.
func (r *PDFRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	// Containers and CI runners usually cannot use Chrome's sandbox.
	if bin != "" || os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l
	r.browser = b
	return nil
}

// Close shuts the browser down. It is safe to call more than once.
func (r *PDFRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
	}
	r.browser = nil
	r.launcher = nil
	return err
}

// printOptions maps PDFOptions to Chrome's print parameters.
func printOptions(opts PDFOptions) *proto.PagePrintToPDF {
	width, height := opts.Page.dimensions()
	margin := opts.Page.Margin
	bottom := margin
	if opts.Footer != nil {
		bottom += footerReserve
	}

	p := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
	if opts.Footer != nil {
		p.DisplayHeaderFooter = true
		p.HeaderTemplate = "<span></span>"
		p.FooterTemplate = footerTemplate(opts.Footer)
	}
	return p
}

// footerTemplate builds Chrome's footer markup. pageNumber and totalPages
// are filled in by Chrome.
func footerTemplate(f *PDFFooter) string {
	left := html.EscapeString(f.Text)
	right := ""
	if f.ShowPageNumber {
		right = `Page <span class="pageNumber"></span> of <span class="totalPages"></span>`
	}
	if left == "" && right == "" {
		return "<span></span>"
	}
	return `<div style="font-size: 8px; font-family: Arial, sans-serif; color: #666; width: 100%; padding: 0 0.5in; display: flex; justify-content: space-between;">` +
		"<span>" + left + "</span><span>" + right + "</span></div>"
}

func floatPtr(v float64) *float64 {
	return &v
}
