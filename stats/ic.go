package stats

import "math"

// Criteria holds the Gaussian information criteria of a fitted model.
// Lower values indicate a better fit-complexity trade-off.
type Criteria struct {
	LogLik float64
	AIC    float64
	AICc   float64
	BIC    float64
}

// InformationCriteria computes AIC, AICc and BIC from a log-likelihood over
// n effective observations with k estimated parameters (count the innovation
// variance as a parameter). AICc is +Inf when the small-sample correction
// denominator n-k-1 is not positive.
func InformationCriteria(logLik float64, n, k int) Criteria {
	kf := float64(k)
	aic := -2*logLik + 2*kf
	bic := -2*logLik + kf*math.Log(float64(n))
	aicc := math.Inf(1)
	if n-k-1 > 0 {
		aicc = aic + 2*kf*(kf+1)/float64(n-k-1)
	}
	return Criteria{LogLik: logLik, AIC: aic, AICc: aicc, BIC: bic}
}

// GaussianLogLik returns the concentrated conditional Gaussian
// log-likelihood implied by a sum of squared one-step errors over m
// residuals: -m/2 * (log(2*pi*css/m) + 1). NaN when m or css is not
// positive.
func GaussianLogLik(css float64, m int) float64 {
	if m <= 0 || css <= 0 {
		return math.NaN()
	}
	sigma2 := css / float64(m)
	return -0.5 * float64(m) * (math.Log(2*math.Pi*sigma2) + 1)
}
