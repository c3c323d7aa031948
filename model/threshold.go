package model

import "fmt"

// ThresholdPoint is one precomputed operating point of a classifier, as shown
// by the threshold tuning page.
type ThresholdPoint struct {
	ID        string  `json:"id" yaml:"id"`
	Model     string  `json:"model" yaml:"model"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Selected  bool    `json:"selected" yaml:"selected"`
}

func (p *ThresholdPoint) RowID() string { return p.ID }

func (p *ThresholdPoint) SearchText() string {
	return fmt.Sprintf("%s %.2f", p.Model, p.Threshold)
}
