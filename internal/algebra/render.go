package algebra

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verdictlab/verdict/internal/domain"
)

// Pretty renders a value as "<payload> (<cf>% certain)". Series are
// rendered pointwise, one "date: rendered entry" segment per change point.
func Pretty(v domain.Value) string {
	if v.IsSeries() {
		points := v.Series().Points()
		segs := make([]string, len(points))
		for i, p := range points {
			segs[i] = fmt.Sprintf("%s: %s", p.At.Format("2006-01-02"), Pretty(p.Val))
		}
		return strings.Join(segs, "; ")
	}
	return fmt.Sprintf("%s (%d%% certain)", payloadString(v), int(math.Round(v.CF()*100)))
}

func payloadString(v domain.Value) string {
	switch v.Kind() {
	case domain.KindStub:
		return "Stub"
	case domain.KindLogic:
		return v.Logic().String()
	case domain.KindScalar:
		switch s := v.Scalar().(type) {
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case string:
			return s
		case time.Time:
			return s.Format("2006-01-02")
		}
	}
	return fmt.Sprintf("%v", v.Scalar())
}
