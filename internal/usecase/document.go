package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"valuation-service/internal/domain"
)

const proposalHTML = `<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        h1 { color: #2c3e50; }
        .section { margin-bottom: 20px; }
        .label { font-weight: bold; }
    </style>
</head>
<body>
    <h1>ご売却支援査定提案書</h1>
    <p>日付: {{.Date}}</p>

    <div class="section">
        <h2>物件情報</h2>
        <p><span class="label">所在地:</span> {{.Address}}</p>
        <p><span class="label">土地面積:</span> {{.LandAreaSqm}} m²</p>
        <p><span class="label">建物面積:</span> {{.BuildingAreaSqm}} m²</p>
        <p><span class="label">築年:</span> {{.BuildingYear}}</p>
        <p><span class="label">構造:</span> {{.Structure}}</p>
    </div>

    <div class="section">
        <h2>査定結果</h2>
        <p><span class="label">AI査定価格:</span> {{.PredictedPrice}} 円</p>
        <p><span class="label">売出ご提案価格:</span> {{.MinPrice}} 円 〜 {{.MaxPrice}} 円</p>
    </div>

    <div class="section">
        <h2>AI市場流通性判定</h2>
        <p>{{.MarketLiquidity}}</p>
    </div>

    <div class="section">
        <h2>ご提案・媒介契約・費用</h2>
        <p>（ここにテンプレート文面が入ります）</p>
    </div>

</body>
</html>
`

type DocumentUseCase struct {
	renderer domain.DocumentRenderer
	tmpl     *template.Template
	now      func() time.Time
}

// NewDocumentUseCase builds the proposal pipeline. A nil clock falls back to
// the system clock; tests inject a fixed one.
func NewDocumentUseCase(renderer domain.DocumentRenderer, now func() time.Time) *DocumentUseCase {
	if now == nil {
		now = time.Now
	}
	return &DocumentUseCase{
		renderer: renderer,
		tmpl:     template.Must(template.New("proposal").Parse(proposalHTML)),
		now:      now,
	}
}

// Assemble merges the request into the fixed proposal schema. It is
// deliberately permissive: every missing field defaults, and the only
// non-deterministic input is the injected clock.
func (uc *DocumentUseCase) Assemble(req domain.DocumentRequest) domain.FilledTemplate {
	liquidity := req.AIMarketLiquidity
	if liquidity == "" {
		liquidity = domain.LiquidityUnclassified
	}

	return domain.FilledTemplate{
		Date:            uc.now().Format("2006-01-02"),
		Address:         req.PropertyInfo.Address,
		LandAreaSqm:     formatNumber(req.PropertyInfo.LandAreaSqm),
		BuildingAreaSqm: formatNumber(req.PropertyInfo.BuildingAreaSqm),
		BuildingYear:    req.PropertyInfo.BuildingYear,
		Structure:       req.PropertyInfo.Structure,
		PredictedPrice:  formatNumber(req.PredictedPrice),
		MinPrice:        formatNumber(req.ProposedPriceRange.MinPrice),
		MaxPrice:        formatNumber(req.ProposedPriceRange.MaxPrice),
		MarketLiquidity: liquidity,
	}
}

// Generate assembles the proposal, renders it to HTML and hands it to the
// document renderer. Only template or renderer failures propagate.
func (uc *DocumentUseCase) Generate(ctx context.Context, req domain.DocumentRequest) (*domain.RenderedDocument, error) {
	filled := uc.Assemble(req)

	var buf bytes.Buffer
	if err := uc.tmpl.Execute(&buf, filled); err != nil {
		return nil, fmt.Errorf("render proposal template: %w", err)
	}

	return uc.renderer.Render(ctx, buf.Bytes())
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
