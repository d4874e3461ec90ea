package spectrum

// PdfSet is a 4-lane probability density, one per wavelength lane of a
// Set. Structurally identical to Sample but semantically distinct:
// densities are never negative, and HWSS MIS weights are built from
// them rather than from radiance values.
type PdfSet struct {
	H, A, B, C float64
}

func SplatPdf(v float64) PdfSet { return PdfSet{v, v, v, v} }

func (p PdfSet) Hero() float64 { return p.H }

func (p PdfSet) Sum() float64 { return p.H + p.A + p.B + p.C }

func (p PdfSet) Add(o PdfSet) PdfSet {
	return PdfSet{p.H + o.H, p.A + o.A, p.B + o.B, p.C + o.C}
}

func (p PdfSet) Scale(k float64) PdfSet {
	return PdfSet{p.H * k, p.A * k, p.B * k, p.C * k}
}

// Mul is the elementwise product used to accumulate a path's PDF
// across bounces: path_pdfs *= bsdf_pdfs, lane by lane.
func (p PdfSet) Mul(o PdfSet) PdfSet {
	return PdfSet{p.H * o.H, p.A * o.A, p.B * o.B, p.C * o.C}
}

// MISWeights returns the elementwise balance-heuristic weight for each
// lane: lane_i / sum(lanes). When HWSS is disabled the caller has
// already zeroed every non-hero lane of p before calling this, which
// collapses the result to (1, 0, 0, 0) — spec.md §4.1's SWSS
// degenerate case.
func (p PdfSet) MISWeights() Sample {
	sum := p.Sum()
	if sum == 0 {
		return Sample{}
	}
	return Sample{p.H / sum, p.A / sum, p.B / sum, p.C / sum}
}

// ZeroNonHero returns a PdfSet with only the hero lane kept, used when
// HWSS is disabled so that the partner hypotheses do not contribute to
// a path's MIS weight.
func (p PdfSet) ZeroNonHero() PdfSet {
	return PdfSet{H: p.H}
}

func (p PdfSet) IsZero() bool {
	return p.H == 0 && p.A == 0 && p.B == 0 && p.C == 0
}
