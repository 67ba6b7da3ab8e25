package calib

// Line is a known reference feature: a neon emission wavelength in nm
// or an acetonitrile Raman shift in cm^-1. Reference tables are
// ordered by ascending Value; rank matching relies on that order.
type Line struct {
	Label string
	Value float64
}

// NeonLinesNM lists the neon emission lines visible in the OpenRAMAN
// spectral window with a 532 nm laser, in nm.
var NeonLinesNM = []Line{
	{"Ne I 585.249", 585.249},
	{"Ne I 588.189", 588.189},
	{"Ne I 594.483", 594.483},
	{"Ne I 607.434", 607.434},
	{"Ne I 609.616", 609.616},
	{"Ne I 614.306", 614.306},
	{"Ne I 616.359", 616.359},
	{"Ne I 621.728", 621.728},
	{"Ne I 626.649", 626.649},
	{"Ne I 630.479", 630.479},
	{"Ne I 633.443", 633.443},
	{"Ne I 638.299", 638.299},
	{"Ne I 640.225", 640.225},
	{"Ne I 650.653", 650.653},
	{"Ne I 653.288", 653.288},
}

// AcetonitrileShiftsCM1 lists the prominent acetonitrile Raman peaks,
// in cm^-1.
var AcetonitrileShiftsCM1 = []Line{
	{"C-C stretch", 918},
	{"CH3 sym deformation", 1376},
	{"C#N stretch", 2249},
	{"CH3 sym stretch", 2942},
	{"CH3 asym stretch", 2999},
}
