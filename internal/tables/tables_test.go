package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesSizes(t *testing.T) {
	std := Tables(false)
	wantSizes := [NBSubbands]int{65, 9, 3, 5}
	for i, want := range wantSizes {
		assert.Equalf(t, want, std[i].Size(), "std[%d].Size()", i)
	}

	hd := Tables(true)
	wantHDSizes := [NBSubbands]int{257, 33, 9, 17}
	for i, want := range wantHDSizes {
		assert.Equalf(t, want, hd[i].Size(), "hd[%d].Size()", i)
	}
}

func TestFactorMaxAndPredictionOrder(t *testing.T) {
	for _, hd := range []bool{false, true} {
		tbl := Tables(hd)
		wantMax := [NBSubbands]int32{0x11FF, 0x14FF, 0x16FF, 0x15FF}
		wantOrder := [NBSubbands]int{24, 12, 6, 12}
		for i := 0; i < NBSubbands; i++ {
			assert.Equalf(t, wantMax[i], tbl[i].FactorMax, "hd=%v [%d].FactorMax", hd, i)
			assert.Equalf(t, wantOrder[i], tbl[i].PredictionOrder, "hd=%v [%d].PredictionOrder", hd, i)
		}
	}
}

func TestQuantizationFactorsLength(t *testing.T) {
	assert.Len(t, QuantizationFactors, 32)
	assert.Equal(t, int16(2048), QuantizationFactors[0])
	assert.Equal(t, int16(4008), QuantizationFactors[31])
}

func TestQMFCoeffsMirrored(t *testing.T) {
	for i := 0; i < FilterTaps; i++ {
		assert.Equalf(t, QMFOuterCoeffs[0][i], QMFOuterCoeffs[1][FilterTaps-1-i], "outer coeffs not mirrored at %d", i)
		assert.Equalf(t, QMFInnerCoeffs[0][i], QMFInnerCoeffs[1][FilterTaps-1-i], "inner coeffs not mirrored at %d", i)
	}
}
