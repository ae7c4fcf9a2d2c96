package render

import (
	"context"
	"encoding/base64"
	"math"

	"github.com/chromedp/chromedp"

	"github.com/matzehuels/guidekit/pkg/errors"
)

// Chrome rasterizes SVG in a headless Chrome. It needs a Chrome or
// Chromium binary; ExecPath overrides the lookup.
type Chrome struct {
	ExecPath string
}

func (*Chrome) Name() string { return RasterizerChrome }

// PNG loads the SVG as a data URI and screenshots the svg element. The
// viewport matches the canvas and scale becomes the device pixel ratio.
func (c *Chrome) PNG(ctx context.Context, svg []byte, width, height, scale float64) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(math.Ceil(width)), int64(math.Ceil(height)), chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "chrome screenshot")
	}
	if len(shot) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "chrome screenshot is empty")
	}
	return shot, nil
}
