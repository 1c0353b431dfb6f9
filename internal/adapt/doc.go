// Package adapt decides how to adjust a foreground color so it stays readable
// on a given background.
//
// It is the policy layer on top of package color: it measures the background
// and foreground, grades the contrast against the WCAG levels, and when the
// ratio is too low it walks the foreground toward white or black with
// color.ShadeColor until the target ratio is met.
//
//	res, err := adapt.EnsureContrast("#777777", "#1e1e1e", adapt.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Adjusted, res.Ratio, res.Level)
//
// Drift reports how far the adjusted color moved from the original as a
// CIEDE2000 distance, so callers can tell a subtle tweak from a replacement.
package adapt
