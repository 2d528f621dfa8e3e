// Package geo computes geodesic distances on the WGS-84 ellipsoid.
//
// Geofence verdicts compare guard GPS fixes against registered QR points at
// distances of tens of meters, where a flat-plane approximation already
// disagrees with reference implementations. Vincenty's inverse formula keeps
// results within millimeters of ellipsoidal reference values.
package geo

import "math"

// WGS-84 ellipsoid.
const (
	semiMajorM = 6378137.0
	semiMinorM = 6356752.314245
	flattening = 1.0 / 298.257223563

	convergence   = 1e-12
	maxIterations = 200
)

// DistanceMeters returns the geodesic distance between two points given in
// decimal degrees, using Vincenty's inverse formula. For the nearly antipodal
// pairs where Vincenty fails to converge it falls back to the spherical
// great-circle distance, which is accurate enough at that scale.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	phi1 := deg2rad(lat1)
	phi2 := deg2rad(lat2)
	L := deg2rad(lng2 - lng1)

	U1 := math.Atan((1 - flattening) * math.Tan(phi1))
	U2 := math.Atan((1 - flattening) * math.Tan(phi2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64

	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Sqrt(
			(cosU2*sinLambda)*(cosU2*sinLambda) +
				(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda),
		)
		if sinSigma == 0 {
			return 0 // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			cos2SigmaM = 0 // equatorial line
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = L + (1-C)*flattening*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-lambdaPrev) < convergence {
			uSq := cosSqAlpha * (semiMajorM*semiMajorM - semiMinorM*semiMinorM) / (semiMinorM * semiMinorM)
			A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := B * sinSigma * (cos2SigmaM + B/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

			return semiMinorM * A * (sigma - deltaSigma)
		}
	}

	return haversineMeters(lat1, lng1, lat2, lng2)
}

// RoundMeters rounds a distance to two decimal places for storage and
// display. Radius comparisons use the full-precision value.
func RoundMeters(m float64) float64 {
	return math.Round(m*100) / 100
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusM = 6371000.0

	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
