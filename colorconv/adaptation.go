package colorconv

// Bradford cone response matrix
var bradford = Mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var invBradford = bradford.Inverse()

// AdaptationMatrix constructs a 3x3 matrix that adapts XYZ values from
// sourceWhite to targetWhite using the Bradford method. Equal white points
// give the identity.
func AdaptationMatrix(sourceWhite, targetWhite WhitePoint) Mat3 {
	if sourceWhite == targetWhite {
		return Identity
	}
	src := bradford.Apply(sourceWhite.Vec3())
	tgt := bradford.Apply(targetWhite.Vec3())
	diag := Diagonal(tgt[0]/src[0], tgt[1]/src[1], tgt[2]/src[2])
	// adapt = invB * diag * B
	return invBradford.Multiply(diag.Multiply(bradford))
}

// Adapt re-references an XYZ matrix (for example an RGB to XYZ transform)
// from one white point to another.
func Adapt(m Mat3, sourceWhite, targetWhite WhitePoint) Mat3 {
	if sourceWhite == targetWhite {
		return m
	}
	return AdaptationMatrix(sourceWhite, targetWhite).Multiply(m)
}

// AdaptXYZ re-references a single XYZ triple.
func AdaptXYZ(xyz Vec3, sourceWhite, targetWhite WhitePoint) Vec3 {
	if sourceWhite == targetWhite {
		return xyz
	}
	return AdaptationMatrix(sourceWhite, targetWhite).Apply(xyz)
}
