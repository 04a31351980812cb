// Package tables holds the static constant data the UO frame decoder is
// built around: the pitch lag coefficient book, the LSF quantization
// tables, the codebook gain-power ratio ladder, and the codebook vectors
// and per-vector delta gains. Everything here is loaded once at program
// start and never mutated.
package tables

// SubframeLagCoefficients holds, for each of the 64 possible 6-bit lag
// coefficient indices, the three pre-halved (a0, a1, a2) taps applied to
// the lag buffer when computing a subframe's pitch vector. Row r implements
// a quadratic (Lagrange) fractional-delay kernel at phase r/64, which is
// the shape a 3-tap pitch predictor's coefficient book takes in practice:
// the taps interpolate smoothly between adjacent lag-buffer samples as the
// fractional part of the pitch period moves from 0 to 1.
var SubframeLagCoefficients = [64][3]float64{
	{0, 0.5, -0},
	{0.003967285156, 0.4998779297, -0.003845214844},
	{0.008056640625, 0.4995117188, -0.007568359375},
	{0.01226806641, 0.4989013672, -0.01116943359},
	{0.0166015625, 0.498046875, -0.0146484375},
	{0.02105712891, 0.4969482422, -0.01800537109},
	{0.02563476562, 0.4956054688, -0.02124023438},
	{0.03033447266, 0.4940185547, -0.02435302734},
	{0.03515625, 0.4921875, -0.02734375},
	{0.04010009766, 0.4901123047, -0.03021240234},
	{0.04516601562, 0.4877929688, -0.03295898438},
	{0.05035400391, 0.4852294922, -0.03558349609},
	{0.0556640625, 0.482421875, -0.0380859375},
	{0.06109619141, 0.4793701172, -0.04046630859},
	{0.06665039062, 0.4760742188, -0.04272460938},
	{0.07232666016, 0.4725341797, -0.04486083984},
	{0.078125, 0.46875, -0.046875},
	{0.08404541016, 0.4647216797, -0.04876708984},
	{0.09008789062, 0.4604492188, -0.05053710938},
	{0.09625244141, 0.4559326172, -0.05218505859},
	{0.1025390625, 0.451171875, -0.0537109375},
	{0.1089477539, 0.4461669922, -0.05511474609},
	{0.1154785156, 0.4409179688, -0.05639648438},
	{0.1221313477, 0.4354248047, -0.05755615234},
	{0.12890625, 0.4296875, -0.05859375},
	{0.1358032227, 0.4237060547, -0.05950927734},
	{0.1428222656, 0.4174804688, -0.06030273438},
	{0.1499633789, 0.4110107422, -0.06097412109},
	{0.1572265625, 0.404296875, -0.0615234375},
	{0.1646118164, 0.3973388672, -0.06195068359},
	{0.1721191406, 0.3901367188, -0.06225585938},
	{0.1797485352, 0.3826904297, -0.06243896484},
	{0.1875, 0.375, -0.0625},
	{0.1953735352, 0.3670654297, -0.06243896484},
	{0.2033691406, 0.3588867188, -0.06225585938},
	{0.2114868164, 0.3504638672, -0.06195068359},
	{0.2197265625, 0.341796875, -0.0615234375},
	{0.2280883789, 0.3328857422, -0.06097412109},
	{0.2365722656, 0.3237304688, -0.06030273438},
	{0.2451782227, 0.3143310547, -0.05950927734},
	{0.25390625, 0.3046875, -0.05859375},
	{0.2627563477, 0.2947998047, -0.05755615234},
	{0.2717285156, 0.2846679688, -0.05639648438},
	{0.2808227539, 0.2742919922, -0.05511474609},
	{0.2900390625, 0.263671875, -0.0537109375},
	{0.2993774414, 0.2528076172, -0.05218505859},
	{0.3088378906, 0.2416992188, -0.05053710938},
	{0.3184204102, 0.2303466797, -0.04876708984},
	{0.328125, 0.21875, -0.046875},
	{0.3379516602, 0.2069091797, -0.04486083984},
	{0.3479003906, 0.1948242188, -0.04272460938},
	{0.3579711914, 0.1824951172, -0.04046630859},
	{0.3681640625, 0.169921875, -0.0380859375},
	{0.3784790039, 0.1571044922, -0.03558349609},
	{0.3889160156, 0.1440429688, -0.03295898438},
	{0.3994750977, 0.1307373047, -0.03021240234},
	{0.41015625, 0.1171875, -0.02734375},
	{0.4209594727, 0.1033935547, -0.02435302734},
	{0.4318847656, 0.08935546875, -0.02124023438},
	{0.4429321289, 0.07507324219, -0.01800537109},
	{0.4541015625, 0.060546875, -0.0146484375},
	{0.4653930664, 0.04577636719, -0.01116943359},
	{0.4768066406, 0.03076171875, -0.007568359375},
	{0.4883422852, 0.01550292969, -0.003845214844},
}

// LSFIndexBits gives the bit width of each of the 10 LSF indices in a
// frame header, in decode order. They sum to 44 bits.
var LSFIndexBits = [10]int{6, 6, 5, 5, 4, 4, 4, 4, 3, 3}

// LSFTable holds, for each of the 10 LSF coefficient positions, the
// quantization levels addressed by that position's index (row i has
// 2^LSFIndexBits[i] entries). Entries are monotonically increasing within
// a row and roughly track the expected spread of an ordered LSF vector:
// low-order coefficients cluster near the low end of [-1, 1], high-order
// coefficients near the high end.
var LSFTable = [10][]float64{
	{-0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.9785714286, -0.9547619048, -0.930952381, -0.9071428571, -0.8833333333, -0.8595238095, -0.8357142857, -0.8119047619, -0.7880952381, -0.7642857143, -0.7404761905, -0.7166666667, -0.6928571429, -0.669047619, -0.6452380952, -0.6214285714, -0.5976190476, -0.5738095238, -0.55, -0.5261904762, -0.5023809524, -0.4785714286, -0.4547619048, -0.430952381, -0.4071428571, -0.3833333333, -0.3595238095, -0.3357142857, -0.3119047619, -0.2880952381, -0.2642857143, -0.2404761905, -0.2166666667, -0.1928571429, -0.169047619, -0.1452380952, -0.1214285714, -0.09761904762, -0.07380952381, -0.05},
	{-0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.999, -0.9947089947, -0.9721340388, -0.9495590829, -0.926984127, -0.9044091711, -0.8818342152, -0.8592592593, -0.8366843034, -0.8141093474, -0.7915343915, -0.7689594356, -0.7463844797, -0.7238095238, -0.7012345679, -0.678659612, -0.6560846561, -0.6335097002, -0.6109347443, -0.5883597884, -0.5657848325, -0.5432098765, -0.5206349206, -0.4980599647, -0.4754850088, -0.4529100529, -0.430335097, -0.4077601411, -0.3851851852, -0.3626102293, -0.3400352734, -0.3174603175, -0.2948853616, -0.2723104056, -0.2497354497, -0.2271604938, -0.2045855379, -0.182010582, -0.1594356261, -0.1368606702, -0.1142857143, -0.09171075838, -0.06913580247, -0.04656084656, -0.02398589065, -0.001410934744, 0.02116402116, 0.04373897707, 0.06631393298, 0.08888888889},
	{-0.999, -0.999, -0.999, -0.9865591398, -0.9431899642, -0.8998207885, -0.8564516129, -0.8130824373, -0.7697132616, -0.726344086, -0.6829749104, -0.6396057348, -0.5962365591, -0.5528673835, -0.5094982079, -0.4661290323, -0.4227598566, -0.379390681, -0.3360215054, -0.2926523297, -0.2492831541, -0.2059139785, -0.1625448029, -0.1191756272, -0.07580645161, -0.03243727599, 0.01093189964, 0.05430107527, 0.0976702509, 0.1410394265, 0.1844086022, 0.2277777778},
	{-0.9, -0.8591397849, -0.8182795699, -0.7774193548, -0.7365591398, -0.6956989247, -0.6548387097, -0.6139784946, -0.5731182796, -0.5322580645, -0.4913978495, -0.4505376344, -0.4096774194, -0.3688172043, -0.3279569892, -0.2870967742, -0.2462365591, -0.2053763441, -0.164516129, -0.123655914, -0.08279569892, -0.04193548387, -0.001075268817, 0.03978494624, 0.08064516129, 0.1215053763, 0.1623655914, 0.2032258065, 0.2440860215, 0.2849462366, 0.3258064516, 0.3666666667},
	{-0.6833333333, -0.6040740741, -0.5248148148, -0.4455555556, -0.3662962963, -0.287037037, -0.2077777778, -0.1285185185, -0.04925925926, 0.03, 0.1092592593, 0.1885185185, 0.2677777778, 0.347037037, 0.4262962963, 0.5055555556},
	{-0.4666666667, -0.3925925926, -0.3185185185, -0.2444444444, -0.1703703704, -0.0962962963, -0.02222222222, 0.05185185185, 0.1259259259, 0.2, 0.2740740741, 0.3481481481, 0.4222222222, 0.4962962963, 0.5703703704, 0.6444444444},
	{-0.25, -0.1811111111, -0.1122222222, -0.04333333333, 0.02555555556, 0.09444444444, 0.1633333333, 0.2322222222, 0.3011111111, 0.37, 0.4388888889, 0.5077777778, 0.5766666667, 0.6455555556, 0.7144444444, 0.7833333333},
	{-0.03333333333, 0.03037037037, 0.09407407407, 0.1577777778, 0.2214814815, 0.2851851852, 0.3488888889, 0.4125925926, 0.4762962963, 0.54, 0.6037037037, 0.6674074074, 0.7311111111, 0.7948148148, 0.8585185185, 0.9222222222},
	{0.1833333333, 0.3087301587, 0.4341269841, 0.5595238095, 0.6849206349, 0.8103174603, 0.9357142857, 0.999},
	{0.4, 0.5142857143, 0.6285714286, 0.7428571429, 0.8571428571, 0.9714285714, 0.999, 0.999},
}

// CodebookGainPowerRatio and CodebookGainPowerValue are parallel ladders
// walked top-to-bottom by the gain-power selector: the first row whose
// ratio the current/previous energy ratio falls under supplies the new
// codebook gain power.
var CodebookGainPowerRatio = [15]float64{
	0.9823608398,
	0.9083382743,
	0.8343157087,
	0.7602931431,
	0.6862705776,
	0.612248012,
	0.5382254464,
	0.4642028809,
	0.3901803153,
	0.3161577497,
	0.2421351842,
	0.1681126186,
	0.09409005301,
	0.02006748744,
	-0.05395507812,
}

var CodebookGainPowerValue = [15]float64{0.92, 0.9, 0.88, 0.86, 0.83, 0.8, 0.75, 0.7, 0.65, 0.6, 0.5, 0.4, 0.3, 0.15, 0}

// FallbackCodebookGainPower is used when no ratio-ladder row matches.
const FallbackCodebookGainPower = -0.10

// CodebookVectorTable holds the 32 four-sample excitation vectors indexed
// by a codebook step's 5-bit codebook index.
var CodebookVectorTable = [32][4]float64{
	{0.1, 0.5398147269, 0.6903137971, 0.5477387909},
	{0.3570267018, 0.3765837591, 0.4733772183, 0.3824052741},
	{-0.03859169557, -0.5257360973, -0.7638591799, -0.6616885642},
	{-0.4127369677, -0.3482860742, -0.4245046526, -0.3983735558},
	{-0.06452068552, 0.415689451, 0.711227575, 0.6511025892},
	{0.3588752378, 0.207888684, 0.248893611, 0.2855949118},
	{0.07088614692, -0.3498909651, -0.6600038434, -0.6246927359},
	{-0.2867849729, -0.02843094728, 0.006789183025, -0.05381871844},
	{0.051329854, 0.393660632, 0.6979940736, 0.6865489025},
	{0.3173940185, -0.05311271752, -0.1992487107, -0.1634104909},
	{-0.1925518423, -0.4638145259, -0.7659125317, -0.8016732681},
	{-0.4470472334, 0.001037731409, 0.2547255201, 0.2651777943},
	{0.2384886612, 0.4378033241, 0.7331098374, 0.8340422587},
	{0.5451408453, 0.07569623298, -0.2508955081, -0.2980722171},
	{-0.2103483203, -0.3110013562, -0.5631545554, -0.7109985088},
	{-0.5071769893, -0.05516853522, 0.3147495159, 0.3893485751},
	{0.2365123391, 0.2085293958, 0.3656883107, 0.5126414957},
	{0.3763017895, -0.05191204599, -0.4622018399, -0.581135196},
	{-0.3905291345, -0.2364793982, -0.2702859615, -0.3766222446},
	{-0.2850057223, 0.1207734299, 0.5764272651, 0.7698055947},
	{0.5944478626, 0.3545116563, 0.2762413994, 0.3348784354},
	{0.2890990812, -0.07189083379, -0.5515659881, -0.8256044881},
	{-0.7065810308, -0.4257891389, -0.2617052622, -0.282085689},
	{-0.2980155928, -0.02505181096, 0.4254027356, 0.7464381664},
	{0.6867607492, 0.3829717464, 0.1402411273, 0.1138915898},
	{0.1871583975, 0.03078042119, -0.3379260671, -0.6576557535},
	{-0.6372022143, -0.3069004923, 0.02779100007, 0.1353349287},
	{0.04547457977, 0.09732707217, 0.3660174375, 0.6582864383},
	{0.669641361, 0.3218865663, -0.1060391572, -0.3249695637},
	{-0.2706882134, -0.255686107, -0.4362971967, -0.7022486297},
	{-0.7623916221, -0.4365967432, 0.04852852973, 0.3717903224},
	{0.3785094778, 0.3220351451, 0.4222505345, 0.6599227559},
}

// CodebookDeltaGain holds the 32 additive gain-level deltas (dB) applied
// after each codebook step, indexed by the 5-bit codebook index.
var CodebookDeltaGain = [32]float64{
	0.9576047954, 1.567711346, 2.03914305, 2.306758319, 2.332128762, 2.108766977, 1.663041501, 1.050654643, 0.349159334, -0.3524728565, -0.9658214137, -1.414905098, -1.64638064, -1.636672594, -1.395070437, -0.9623748728, -0.4052777307, 0.1927627218, 0.7429148629, 1.163092028, 1.389154739, 1.383679566, 1.141106733, 0.6885687728, 0.0822871496, -0.5999762844, -1.269392066, -1.838043323, -2.230792451, -2.395428554, -2.309722512, -1.984434938,
}

// GainEnergyFactor is the decaying-accumulator coefficient 0.94^2.
const GainEnergyFactor = 0.8836
