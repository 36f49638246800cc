package mathkeyboard

import (
	"regexp"
	"strings"
)

// Mapping is what a virtual key produces: either raw text or a LaTeX
// template, which may contain placeholder markers.
type Mapping struct {
	Latex           string `json:"latex,omitempty"`
	HasPlaceholders bool   `json:"hasPlaceholders,omitempty"`
	InsertText      string `json:"insertText,omitempty"`
}

var symbolMacros = map[string]string{
	"π": `\pi`,
	"∞": `\infty`,
	"±": `\pm`,
	"≤": `\leq`,
	"≥": `\geq`,
	"≠": `\neq`,
	"×": `\times`,
	"÷": `\div`,
	"∈": `\in`,
	"∉": `\notin`,
	"∅": `\emptyset`,
	"⊂": `\subset`,
	"⊃": `\supset`,
	"⊆": `\subseteq`,
	"⊇": `\supseteq`,
	"∪": `\cup`,
	"∩": `\cap`,
	"∀": `\forall`,
	"∃": `\exists`,
	"¬": `\neg`,
	"⇒": `\Rightarrow`,
	"⇔": `\Leftrightarrow`,
	"⊢": `\vdash`,
	"⊨": `\vDash`,
	"⊕": `\oplus`,
	"⊗": `\otimes`,
	"⊙": `\odot`,
	"∑": `\sum`,
	"∏": `\prod`,
	"∟": `\angle`,
	"∢": `\measuredangle`,
	"⟂": `\perp`,
	"∥": `\parallel`,
	"°": `^{\circ}`,
	"Δ": `\Delta`,
	"α": `\alpha`,
	"β": `\beta`,
	"γ": `\gamma`,
	"δ": `\delta`,
	"θ": `\theta`,
	"φ": `\phi`,
	"Σ": `\Sigma`,
	"∫": `\int`,
	"log": `\log`,
	"ln":  `\ln`,
	"|":   `\mid`,
}

var functionKey = regexp.MustCompile(`^(sin|cos|tan|cot|sec|csc|arcsin|arccos|arctan|arccot|sinh|cosh|tanh)\($`)

var templates = map[string]Mapping{
	"²":                  {Latex: `^{2}`},
	"³":                  {Latex: `^{3}`},
	"^":                  {Latex: `^{@}`, HasPlaceholders: true},
	"□▖":                 {Latex: `_{@}`, HasPlaceholders: true},
	"√":                  {Latex: `\sqrt{@}`, HasPlaceholders: true},
	"▝√":                 {Latex: `\sqrt[@]{@}`, HasPlaceholders: true},
	"──":                 {Latex: `\frac{@}{@}`, HasPlaceholders: true},
	"□─":                 {Latex: `@\frac{@}{@}`, HasPlaceholders: true},
	"∑▖▘":                {Latex: `\sum_{@}^{@}`, HasPlaceholders: true},
	"∫ ▖▘":               {Latex: `\int_{@}^{@}`, HasPlaceholders: true},
	"f▘(x)":              {Latex: `f^{@}(x)`, HasPlaceholders: true},
	"log₂":               {Latex: `\log_{2}\left(@\right)`, HasPlaceholders: true},
	"logx_x":             {Latex: `\log_{@}\left(@\right)`, HasPlaceholders: true},
	"eˣ":                 {Latex: `e^{@}`, HasPlaceholders: true},
	"lim_x_to_infplus":   {Latex: `\lim_{x\to\infty^{+}}\left(@\right)`, HasPlaceholders: true},
	"lim_x_to_infminus":  {Latex: `\lim_{x\to\infty^{-}}\left(@\right)`, HasPlaceholders: true},
	"lim_x_to_zeroplus":  {Latex: `\lim_{x\to 0^{+}}\left(@\right)`, HasPlaceholders: true},
	"lim_x_to_zerominus": {Latex: `\lim_{x\to 0^{-}}\left(@\right)`, HasPlaceholders: true},
	"lim_x_to_x":         {Latex: `\lim_{@\to @}\left(@\right)`, HasPlaceholders: true},
	`\mathbb{N}`:         {Latex: `\mathbb{N}`},
	`\mathbb{Z}`:         {Latex: `\mathbb{Z}`},
	`\mathbb{Q}`:         {Latex: `\mathbb{Q}`},
	`\mathbb{R}`:         {Latex: `\mathbb{R}`},
	`\mathbb{C}`:         {Latex: `\mathbb{C}`},
}

// KeyToTemplate maps a virtual key value to the text or template it inserts.
// Unknown keys insert themselves as text.
func KeyToTemplate(key string) Mapping {
	if latex, ok := symbolMacros[key]; ok {
		return Mapping{Latex: latex}
	}
	if functionKey.MatchString(key) {
		fn := strings.TrimSuffix(key, "(")
		return Mapping{Latex: `\` + fn + `\left(@\right)`, HasPlaceholders: true}
	}
	if m, ok := templates[key]; ok {
		return m
	}
	return Mapping{InsertText: key}
}
