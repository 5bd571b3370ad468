package catalog

// records lists every nuclide by atomic number, Z = 0 (the free neutron)
// through 118. Fields: Z, symbol, name, period, group, category, melting
// and boiling point (K), standard atomic weight, origin, biological role,
// discovery year (0 = antiquity), discoverer, name origin, isotopes.
var records = [nuclideCount]nuclideRecord{
	{0, "n", "Neutron", 0, 0, nonmetal, 0, 0, 1.0087, cosmogenic, none, 1932, "James Chadwick", "Latin neuter: neither", isotopes(
		unstable(1, 611*sec, bminus))},
	{1, "H", "Hydrogen", 1, 1, nonmetal, 13.99, 20.271, 1.008, primordial, bulk, 1766, "Henry Cavendish", "Greek hydro genes: water-former", isotopes(
		stable(1, 99.9885), stable(2, 0.0115), unstable(3, 12.32*yr, bminus))},
	{2, "He", "Helium", 1, 18, noble, 0, 4.222, 4.0026, primordial, none, 1868, "Pierre Janssen, Norman Lockyer", "Greek helios: sun", isotopes(
		stable(3, 0.000134), stable(4, 99.999866), unstable(6, 806.7*ms, bminus))},
	{3, "Li", "Lithium", 2, 1, alkali, 453.65, 1603, 6.94, primordial, beneficial, 1817, "Johan August Arfwedson", "Greek lithos: stone", isotopes(
		stable(6, 7.59), stable(7, 92.41), unstable(8, 839.9*ms, bminus))},
	{4, "Be", "Beryllium", 2, 2, alkaline, 1560, 2742, 9.0122, primordial, none, 1798, "Louis-Nicolas Vauquelin", "the mineral beryl", isotopes(
		unstable(7, 53.22*days, ec), stable(9, 100), unstable(10, 1.387e6*yr, bminus))},
	{5, "B", "Boron", 2, 13, metalloid, 2349, 4200, 10.81, primordial, beneficial, 1808, "Joseph Louis Gay-Lussac, Louis Jacques Thénard", "Arabic buraq: borax", isotopes(
		unstable(8, 770*ms, bplus), stable(10, 19.9), stable(11, 80.1))},
	{6, "C", "Carbon", 2, 14, nonmetal, 3823, 4098, 12.011, primordial, bulk, 0, "", "Latin carbo: coal", isotopes(
		unstable(11, 20.364*mins, bplus), stable(12, 98.93), stable(13, 1.07), unstable(14, 5730*yr, bminus))},
	{7, "N", "Nitrogen", 2, 15, nonmetal, 63.15, 77.355, 14.007, primordial, bulk, 1772, "Daniel Rutherford", "Greek nitron genes: niter-former", isotopes(
		unstable(13, 9.965*mins, bplus), stable(14, 99.636), stable(15, 0.364))},
	{8, "O", "Oxygen", 2, 16, nonmetal, 54.36, 90.188, 15.999, primordial, bulk, 1771, "Carl Wilhelm Scheele", "Greek oxys genes: acid-former", isotopes(
		unstable(15, 122.24*sec, bplus), stable(16, 99.757), stable(17, 0.038), stable(18, 0.205))},
	{9, "F", "Fluorine", 2, 17, halogen, 53.48, 85.03, 18.998, primordial, beneficial, 1886, "Henri Moissan", "Latin fluere: to flow", isotopes(
		unstable(18, 109.77*mins, bplus), stable(19, 100))},
	{10, "Ne", "Neon", 2, 18, noble, 24.56, 27.104, 20.180, primordial, none, 1898, "William Ramsay, Morris Travers", "Greek neos: new", isotopes(
		stable(20, 90.48), stable(21, 0.27), stable(22, 9.25))},
	{11, "Na", "Sodium", 3, 1, alkali, 370.944, 1156.09, 22.990, primordial, bulk, 1807, "Humphry Davy", "English soda; Latin natrium", isotopes(
		unstable(22, 2.6018*yr, bplus), stable(23, 100), unstable(24, 14.997*hr, bminus))},
	{12, "Mg", "Magnesium", 3, 2, alkaline, 923, 1363, 24.305, primordial, bulk, 1755, "Joseph Black", "Magnesia, a district of Thessaly", isotopes(
		stable(24, 78.99), stable(25, 10.00), stable(26, 11.01), unstable(28, 20.915*hr, bminus))},
	{13, "Al", "Aluminium", 3, 13, post, 933.47, 2743, 26.982, primordial, absorbed, 1825, "Hans Christian Ørsted", "Latin alumen: alum", isotopes(
		unstable(26, 7.17e5*yr, bplus), stable(27, 100))},
	{14, "Si", "Silicon", 3, 14, metalloid, 1687, 3538, 28.085, primordial, beneficial, 1824, "Jöns Jacob Berzelius", "Latin silex: flint", isotopes(
		stable(28, 92.223), stable(29, 4.685), stable(30, 3.092), unstable(32, 153*yr, bminus))},
	{15, "P", "Phosphorus", 3, 15, nonmetal, 317.3, 553.7, 30.974, primordial, bulk, 1669, "Hennig Brand", "Greek phosphoros: light-bearer", isotopes(
		stable(31, 100), unstable(32, 14.268*days, bminus), unstable(33, 25.35*days, bminus))},
	{16, "S", "Sulfur", 3, 16, nonmetal, 388.36, 717.8, 32.06, primordial, bulk, 0, "", "Latin sulpur", isotopes(
		stable(32, 94.99), stable(33, 0.75), stable(34, 4.25), unstable(35, 87.37*days, bminus), stable(36, 0.01))},
	{17, "Cl", "Chlorine", 3, 17, halogen, 171.6, 239.11, 35.45, primordial, bulk, 1774, "Carl Wilhelm Scheele", "Greek chloros: pale green", isotopes(
		stable(35, 75.76), unstable(36, 3.01e5*yr, bminus, ec), stable(37, 24.24))},
	{18, "Ar", "Argon", 3, 18, noble, 83.81, 87.302, 39.95, primordial, none, 1894, "Lord Rayleigh, William Ramsay", "Greek argos: idle", isotopes(
		stable(36, 0.3336), stable(38, 0.0629), unstable(39, 269*yr, bminus), stable(40, 99.6035))},
	{19, "K", "Potassium", 4, 1, alkali, 336.7, 1032, 39.098, primordial, bulk, 1807, "Humphry Davy", "English potash; Latin kalium", isotopes(
		stable(39, 93.2581), natural(40, 0.0117, 1.248e9*yr, bplus, bminus, ec), stable(41, 6.7302))},
	{20, "Ca", "Calcium", 4, 2, alkaline, 1115, 1757, 40.078, primordial, bulk, 1808, "Humphry Davy", "Latin calx: lime", isotopes(
		stable(40, 96.941), unstable(41, 9.94e4*yr, ec), stable(42, 0.647), stable(43, 0.135), stable(44, 2.086), stable(46, 0.004),
		natural(48, 0.187, 6.4e19*yr, bb))},
	{21, "Sc", "Scandium", 4, 3, transition, 1814, 3109, 44.956, primordial, none, 1879, "Lars Fredrik Nilson", "Latin Scandia: Scandinavia", isotopes(
		stable(45, 100), unstable(46, 83.79*days, bminus))},
	{22, "Ti", "Titanium", 4, 4, transition, 1941, 3560, 47.867, primordial, none, 1791, "William Gregor", "the Titans of Greek myth", isotopes(
		unstable(44, 60*yr, ec), stable(46, 8.25), stable(47, 7.44), stable(48, 73.72), stable(49, 5.41), stable(50, 5.18))},
	{23, "V", "Vanadium", 4, 5, transition, 2183, 3680, 50.942, primordial, beneficial, 1801, "Andrés Manuel del Río", "Vanadís, a name of Freyja", isotopes(
		natural(50, 0.25, 2.65e17*yr, bminus, ec), stable(51, 99.75))},
	{24, "Cr", "Chromium", 4, 6, transition, 2180, 2944, 51.996, primordial, beneficial, 1797, "Louis-Nicolas Vauquelin", "Greek chroma: colour", isotopes(
		stable(50, 4.345), unstable(51, 27.7*days, ec), stable(52, 83.789), stable(53, 9.501), stable(54, 2.365))},
	{25, "Mn", "Manganese", 4, 7, transition, 1519, 2334, 54.938, primordial, trace, 1774, "Johan Gottlieb Gahn", "Latin magnes: magnet", isotopes(
		unstable(53, 3.74e6*yr, ec), unstable(54, 312.2*days, ec), stable(55, 100))},
	{26, "Fe", "Iron", 4, 8, transition, 1811, 3134, 55.845, primordial, trace, 0, "", "Anglo-Saxon iren; Latin ferrum", isotopes(
		stable(54, 5.845), unstable(55, 2.737*yr, ec), stable(56, 91.754), stable(57, 2.119), stable(58, 0.282), unstable(60, 2.6e6*yr, bminus))},
	{27, "Co", "Cobalt", 4, 9, transition, 1768, 3200, 58.933, primordial, trace, 1735, "Georg Brandt", "German Kobold: goblin", isotopes(
		unstable(57, 271.74*days, ec), stable(59, 100), unstable(60, 5.2714*yr, bminus))},
	{28, "Ni", "Nickel", 4, 10, transition, 1728, 3003, 58.693, primordial, beneficial, 1751, "Axel Fredrik Cronstedt", "German Nickel: imp", isotopes(
		stable(58, 68.077), unstable(59, 7.6e4*yr, ec), stable(60, 26.223), stable(61, 1.1399), stable(62, 3.6346), unstable(63, 101.2*yr, bminus),
		stable(64, 0.9255))},
	{29, "Cu", "Copper", 4, 11, transition, 1357.77, 2835, 63.546, primordial, trace, 0, "", "Latin cuprum: Cyprus", isotopes(
		stable(63, 69.15), unstable(64, 12.7*hr, bplus, bminus, ec), stable(65, 30.85), unstable(67, 61.83*hr, bminus))},
	{30, "Zn", "Zinc", 4, 12, transition, 692.68, 1180, 65.38, primordial, trace, 1746, "Andreas Sigismund Marggraf", "German Zinke: prong", isotopes(
		stable(64, 49.17), unstable(65, 243.9*days, ec), stable(66, 27.73), stable(67, 4.04), stable(68, 18.45), stable(70, 0.61))},
	{31, "Ga", "Gallium", 4, 13, post, 302.9146, 2673, 69.723, primordial, none, 1875, "Paul-Émile Lecoq de Boisbaudran", "Latin Gallia: France", isotopes(
		unstable(67, 3.26*days, ec), unstable(68, 67.7*mins, bplus), stable(69, 60.108), stable(71, 39.892))},
	{32, "Ge", "Germanium", 4, 14, metalloid, 1211.4, 3106, 72.630, primordial, none, 1886, "Clemens Winkler", "Latin Germania: Germany", isotopes(
		unstable(68, 270.9*days, ec), stable(70, 20.57), stable(72, 27.45), stable(73, 7.75), stable(74, 36.50), natural(76, 7.73, 1.88e21*yr, bb))},
	{33, "As", "Arsenic", 4, 15, metalloid, 887, 887, 74.922, primordial, none, 1250, "Albertus Magnus", "Greek arsenikon: yellow orpiment", isotopes(
		unstable(73, 80.3*days, ec), unstable(74, 17.77*days, bplus, bminus, ec), stable(75, 100))},
	{34, "Se", "Selenium", 4, 16, nonmetal, 494, 958, 78.971, primordial, trace, 1817, "Jöns Jacob Berzelius", "Greek selene: moon", isotopes(
		stable(74, 0.89), unstable(75, 119.8*days, ec), stable(76, 9.37), stable(77, 7.63), stable(78, 23.77), unstable(79, 3.27e5*yr, bminus),
		stable(80, 49.61), natural(82, 8.73, 9.7e19*yr, bb))},
	{35, "Br", "Bromine", 4, 17, halogen, 265.8, 332.0, 79.904, primordial, beneficial, 1826, "Antoine Jérôme Balard", "Greek bromos: stench", isotopes(
		stable(79, 50.69), stable(81, 49.31), unstable(82, 35.28*hr, bminus))},
	{36, "Kr", "Krypton", 4, 18, noble, 115.78, 119.93, 83.798, primordial, none, 1898, "William Ramsay, Morris Travers", "Greek kryptos: hidden", isotopes(
		stable(78, 0.355), stable(80, 2.286), unstable(81, 2.29e5*yr, ec), stable(82, 11.593), stable(83, 11.500), stable(84, 56.987),
		unstable(85, 10.739*yr, bminus), stable(86, 17.279))},
	{37, "Rb", "Rubidium", 5, 1, alkali, 312.45, 961, 85.468, primordial, absorbed, 1861, "Robert Bunsen, Gustav Kirchhoff", "Latin rubidus: deep red", isotopes(
		stable(85, 72.17), unstable(86, 18.65*days, bminus), natural(87, 27.83, 4.97e10*yr, bminus))},
	{38, "Sr", "Strontium", 5, 2, alkaline, 1050, 1650, 87.62, primordial, absorbed, 1790, "Adair Crawford", "Strontian, a village in Scotland", isotopes(
		stable(84, 0.56), stable(86, 9.86), stable(87, 7.00), stable(88, 82.58), unstable(89, 50.56*days, bminus), unstable(90, 28.79*yr, bminus))},
	{39, "Y", "Yttrium", 5, 3, transition, 1799, 3203, 88.906, primordial, none, 1794, "Johan Gadolin", "Ytterby, a village in Sweden", isotopes(
		unstable(88, 106.6*days, ec), stable(89, 100), unstable(90, 64.05*hr, bminus))},
	{40, "Zr", "Zirconium", 5, 4, transition, 2128, 4650, 91.224, primordial, none, 1789, "Martin Heinrich Klaproth", "Persian zargun: gold-coloured", isotopes(
		stable(90, 51.45), stable(91, 11.22), stable(92, 17.15), unstable(93, 1.61e6*yr, bminus), stable(94, 17.38), natural(96, 2.80, 2.0e19*yr, bb))},
	{41, "Nb", "Niobium", 5, 5, transition, 2750, 5017, 92.906, primordial, none, 1801, "Charles Hatchett", "Niobe, daughter of Tantalus", isotopes(
		unstable(91, 680*yr, ec), unstable(92, 3.47e7*yr, ec), stable(93, 100), unstable(94, 2.03e4*yr, bminus))},
	{42, "Mo", "Molybdenum", 5, 6, transition, 2896, 4912, 95.95, primordial, trace, 1778, "Carl Wilhelm Scheele", "Greek molybdos: lead", isotopes(
		stable(92, 14.53), unstable(93, 4000*yr, ec), stable(94, 9.15), stable(95, 15.84), stable(96, 16.67), stable(97, 9.60), stable(98, 24.39),
		unstable(99, 65.94*hr, bminus), natural(100, 9.82, 7.1e18*yr, bb))},
	{43, "Tc", "Technetium", 5, 7, transition, 2430, 4538, 98, decay, none, 1937, "Emilio Segrè, Carlo Perrier", "Greek technetos: artificial", isotopes(
		unstable(97, 4.21e6*yr, ec), unstable(98, 4.2e6*yr, bminus), unstable(99, 2.111e5*yr, bminus))},
	{44, "Ru", "Ruthenium", 5, 8, transition, 2607, 4423, 101.07, primordial, none, 1844, "Karl Ernst Claus", "Latin Ruthenia: Russia", isotopes(
		stable(96, 5.54), stable(98, 1.87), stable(99, 12.76), stable(100, 12.60), stable(101, 17.06), stable(102, 31.55), stable(104, 18.62),
		unstable(106, 373.59*days, bminus))},
	{45, "Rh", "Rhodium", 5, 9, transition, 2237, 3968, 102.91, primordial, none, 1804, "William Hyde Wollaston", "Greek rhodon: rose", isotopes(
		unstable(101, 3.3*yr, ec), unstable(102, 207*days, bplus, bminus, ec), stable(103, 100))},
	{46, "Pd", "Palladium", 5, 10, transition, 1828.05, 3236, 106.42, primordial, none, 1802, "William Hyde Wollaston", "the asteroid Pallas", isotopes(
		stable(102, 1.02), stable(104, 11.14), stable(105, 22.33), stable(106, 27.33), unstable(107, 6.5e6*yr, bminus), stable(108, 26.46),
		stable(110, 11.72))},
	{47, "Ag", "Silver", 5, 11, transition, 1234.93, 2435, 107.87, primordial, none, 0, "", "Anglo-Saxon seolfor; Latin argentum", isotopes(
		unstable(105, 41.29*days, ec), stable(107, 51.839), stable(109, 48.161), unstable(111, 7.45*days, bminus))},
	{48, "Cd", "Cadmium", 5, 12, transition, 594.22, 1040, 112.41, primordial, absorbed, 1817, "Friedrich Stromeyer", "Latin cadmia: calamine", isotopes(
		stable(106, 1.25), stable(108, 0.89), unstable(109, 461.4*days, ec), stable(110, 12.49), stable(111, 12.80), stable(112, 24.13),
		natural(113, 12.22, 8.04e15*yr, bminus), stable(114, 28.73), natural(116, 7.49, 3.1e19*yr, bb))},
	{49, "In", "Indium", 5, 13, post, 429.75, 2345, 114.82, primordial, none, 1863, "Ferdinand Reich, Hieronymous Theodor Richter", "the indigo line in its spectrum", isotopes(
		unstable(111, 2.8047*days, ec), stable(113, 4.29), natural(115, 95.71, 4.41e14*yr, bminus))},
	{50, "Sn", "Tin", 5, 14, post, 505.08, 2875, 118.71, primordial, none, 0, "", "Anglo-Saxon tin; Latin stannum", isotopes(
		stable(112, 0.97), stable(114, 0.66), stable(115, 0.34), stable(116, 14.54), stable(117, 7.68), stable(118, 24.22), stable(119, 8.59),
		stable(120, 32.58), stable(122, 4.63), stable(124, 5.79), unstable(126, 2.3e5*yr, bminus))},
	{51, "Sb", "Antimony", 5, 15, metalloid, 903.78, 1908, 121.76, primordial, none, 0, "", "Latin stibium: stibnite", isotopes(
		stable(121, 57.21), stable(123, 42.79), unstable(125, 2.7586*yr, bminus))},
	{52, "Te", "Tellurium", 5, 16, metalloid, 722.66, 1261, 127.60, primordial, none, 1782, "Franz-Joseph Müller von Reichenstein", "Latin tellus: earth", isotopes(
		stable(120, 0.09), stable(122, 2.55), stable(123, 0.89), stable(124, 4.74), stable(125, 7.07), stable(126, 18.84),
		natural(128, 31.74, 2.2e24*yr, bb), natural(130, 34.08, 7.9e20*yr, bb))},
	{53, "I", "Iodine", 5, 17, halogen, 386.85, 457.4, 126.90, primordial, trace, 1811, "Bernard Courtois", "Greek iodes: violet", isotopes(
		unstable(125, 59.4*days, ec), stable(127, 100), unstable(129, 1.57e7*yr, bminus), unstable(131, 8.0252*days, bminus))},
	{54, "Xe", "Xenon", 5, 18, noble, 161.4, 165.051, 131.29, primordial, none, 1898, "William Ramsay, Morris Travers", "Greek xenos: stranger", isotopes(
		natural(124, 0.0952, 1.8e22*yr, ecec), stable(126, 0.089), stable(128, 1.9102), stable(129, 26.4006), stable(130, 4.0710),
		stable(131, 21.2324), stable(132, 26.9086), unstable(133, 5.2475*days, bminus), stable(134, 10.4357), unstable(135, 9.14*hr, bminus),
		natural(136, 8.8573, 2.165e21*yr, bb))},
	{55, "Cs", "Caesium", 6, 1, alkali, 301.7, 944, 132.91, primordial, none, 1860, "Robert Bunsen, Gustav Kirchhoff", "Latin caesius: sky blue", isotopes(
		stable(133, 100), unstable(134, 2.0652*yr, bminus), unstable(135, 2.3e6*yr, bminus), unstable(137, 30.17*yr, bminus))},
	{56, "Ba", "Barium", 6, 2, alkaline, 1000, 2118, 137.33, primordial, absorbed, 1774, "Carl Wilhelm Scheele", "Greek barys: heavy", isotopes(
		natural(130, 0.106, 1.6e21*yr, ecec), stable(132, 0.101), unstable(133, 10.51*yr, ec), stable(134, 2.417), stable(135, 6.592),
		stable(136, 7.854), stable(137, 11.232), stable(138, 71.698))},
	{57, "La", "Lanthanum", 6, 0, lanthanoid, 1193, 3737, 138.91, primordial, none, 1839, "Carl Gustaf Mosander", "Greek lanthanein: to lie hidden", isotopes(
		unstable(137, 6e4*yr, ec), natural(138, 0.08881, 1.02e11*yr, bminus, ec), stable(139, 99.91119))},
	{58, "Ce", "Cerium", 6, 0, lanthanoid, 1068, 3716, 140.12, primordial, none, 1803, "Jöns Jacob Berzelius, Wilhelm Hisinger", "the dwarf planet Ceres", isotopes(
		stable(136, 0.185), stable(138, 0.251), unstable(139, 137.64*days, ec), stable(140, 88.450), stable(142, 11.114),
		unstable(144, 284.9*days, bminus))},
	{59, "Pr", "Praseodymium", 6, 0, lanthanoid, 1208, 3793, 140.91, primordial, none, 1885, "Carl Auer von Welsbach", "Greek prasios didymos: green twin", isotopes(
		stable(141, 100), unstable(143, 13.57*days, bminus))},
	{60, "Nd", "Neodymium", 6, 0, lanthanoid, 1297, 3347, 144.24, primordial, none, 1885, "Carl Auer von Welsbach", "Greek neos didymos: new twin", isotopes(
		stable(142, 27.2), stable(143, 12.2), natural(144, 23.8, 2.29e15*yr, alpha), stable(145, 8.3), stable(146, 17.2), stable(148, 5.7),
		natural(150, 5.6, 9.1e18*yr, bb))},
	{61, "Pm", "Promethium", 6, 0, lanthanoid, 1315, 3273, 145, decay, none, 1945, "Jacob A. Marinsky, Lawrence E. Glendenin, Charles D. Coryell", "Prometheus of Greek myth", isotopes(
		unstable(145, 17.7*yr, ec), unstable(146, 5.53*yr, bminus, ec), unstable(147, 2.6234*yr, bminus))},
	{62, "Sm", "Samarium", 6, 0, lanthanoid, 1345, 2173, 150.36, primordial, none, 1879, "Paul-Émile Lecoq de Boisbaudran", "the mineral samarskite", isotopes(
		stable(144, 3.07), unstable(146, 1.03e8*yr, alpha), natural(147, 14.99, 1.06e11*yr, alpha), natural(148, 11.24, 7e15*yr, alpha),
		stable(149, 13.82), stable(150, 7.38), unstable(151, 90*yr, bminus), stable(152, 26.75), stable(154, 22.75))},
	{63, "Eu", "Europium", 6, 0, lanthanoid, 1099, 1802, 151.96, primordial, none, 1901, "Eugène-Anatole Demarçay", "the continent of Europe", isotopes(
		natural(151, 47.81, 5e18*yr, alpha), unstable(152, 13.537*yr, bminus, ec), stable(153, 52.19), unstable(154, 8.593*yr, bminus),
		unstable(155, 4.7611*yr, bminus))},
	{64, "Gd", "Gadolinium", 6, 0, lanthanoid, 1585, 3546, 157.25, primordial, none, 1880, "Jean Charles Galissard de Marignac", "the chemist Johan Gadolin", isotopes(
		unstable(148, 71.1*yr, alpha), natural(152, 0.20, 1.08e14*yr, alpha), unstable(153, 240.4*days, ec), stable(154, 2.18), stable(155, 14.80),
		stable(156, 20.47), stable(157, 15.65), stable(158, 24.84), stable(160, 21.86))},
	{65, "Tb", "Terbium", 6, 0, lanthanoid, 1629, 3503, 158.93, primordial, none, 1843, "Carl Gustaf Mosander", "Ytterby, a village in Sweden", isotopes(
		unstable(157, 71*yr, ec), unstable(158, 180*yr, bminus, ec), stable(159, 100), unstable(160, 72.3*days, bminus))},
	{66, "Dy", "Dysprosium", 6, 0, lanthanoid, 1680, 2840, 162.50, primordial, none, 1886, "Paul-Émile Lecoq de Boisbaudran", "Greek dysprositos: hard to get", isotopes(
		unstable(154, 3e6*yr, alpha), stable(156, 0.056), stable(158, 0.095), stable(160, 2.329), stable(161, 18.889), stable(162, 25.475),
		stable(163, 24.896), stable(164, 28.260))},
	{67, "Ho", "Holmium", 6, 0, lanthanoid, 1734, 2993, 164.93, primordial, none, 1878, "Marc Delafontaine, Jacques-Louis Soret", "Latin Holmia: Stockholm", isotopes(
		unstable(163, 4570*yr, ec), stable(165, 100), unstable(166, 26.83*hr, bminus))},
	{68, "Er", "Erbium", 6, 0, lanthanoid, 1802, 3141, 167.26, primordial, none, 1843, "Carl Gustaf Mosander", "Ytterby, a village in Sweden", isotopes(
		stable(162, 0.139), stable(164, 1.601), stable(166, 33.503), stable(167, 22.869), stable(168, 26.978), unstable(169, 9.4*days, bminus),
		stable(170, 14.910))},
	{69, "Tm", "Thulium", 6, 0, lanthanoid, 1818, 2223, 168.93, primordial, none, 1879, "Per Teodor Cleve", "Thule, the far north", isotopes(
		stable(169, 100), unstable(170, 128.6*days, bminus), unstable(171, 1.92*yr, bminus))},
	{70, "Yb", "Ytterbium", 6, 0, lanthanoid, 1097, 1469, 173.05, primordial, none, 1878, "Jean Charles Galissard de Marignac", "Ytterby, a village in Sweden", isotopes(
		stable(168, 0.123), unstable(169, 32.026*days, ec), stable(170, 2.982), stable(171, 14.09), stable(172, 21.68), stable(173, 16.103),
		stable(174, 32.026), stable(176, 12.996))},
	{71, "Lu", "Lutetium", 6, 0, lanthanoid, 1925, 3675, 174.97, primordial, none, 1907, "Georges Urbain", "Latin Lutetia: Paris", isotopes(
		unstable(173, 1.37*yr, ec), unstable(174, 3.31*yr, ec), stable(175, 97.401), natural(176, 2.599, 3.76e10*yr, bminus))},
	{72, "Hf", "Hafnium", 6, 4, transition, 2506, 4876, 178.49, primordial, none, 1923, "Dirk Coster, George de Hevesy", "Latin Hafnia: Copenhagen", isotopes(
		unstable(172, 1.87*yr, ec), natural(174, 0.16, 2e15*yr, alpha), stable(176, 5.26), stable(177, 18.60), stable(178, 27.28),
		stable(179, 13.62), stable(180, 35.08), unstable(182, 8.9e6*yr, bminus))},
	{73, "Ta", "Tantalum", 6, 5, transition, 3290, 5731, 180.95, primordial, none, 1802, "Anders Gustaf Ekeberg", "Tantalus of Greek myth", isotopes(
		unstable(179, 1.82*yr, ec), stable(180, 0.01201), stable(181, 99.98799), unstable(182, 114.43*days, bminus))},
	{74, "W", "Tungsten", 6, 6, transition, 3695, 6203, 183.84, primordial, beneficial, 1783, "Juan José Elhuyar, Fausto Elhuyar", "Swedish tung sten: heavy stone", isotopes(
		natural(180, 0.12, 1.8e18*yr, alpha), unstable(181, 121.2*days, ec), stable(182, 26.50), stable(183, 14.31), stable(184, 30.64),
		unstable(185, 75.1*days, bminus), stable(186, 28.43))},
	{75, "Re", "Rhenium", 6, 7, transition, 3459, 5869, 186.21, primordial, none, 1925, "Walter Noddack, Ida Noddack, Otto Berg", "Latin Rhenus: the Rhine", isotopes(
		stable(185, 37.40), unstable(186, 3.7186*days, bminus, ec), natural(187, 62.60, 4.12e10*yr, bminus))},
	{76, "Os", "Osmium", 6, 8, transition, 3306, 5285, 190.23, primordial, none, 1803, "Smithson Tennant", "Greek osme: smell", isotopes(
		stable(184, 0.02), unstable(185, 93.6*days, ec), natural(186, 1.59, 2e15*yr, alpha), stable(187, 1.96), stable(188, 13.24),
		stable(189, 16.15), stable(190, 26.26), stable(192, 40.78), unstable(194, 6*yr, bminus))},
	{77, "Ir", "Iridium", 6, 9, transition, 2719, 4403, 192.22, primordial, none, 1803, "Smithson Tennant", "Greek iris: rainbow", isotopes(
		stable(191, 37.3), unstable(192, 73.83*days, bminus, ec), stable(193, 62.7))},
	{78, "Pt", "Platinum", 6, 10, transition, 2041.4, 4098, 195.08, primordial, none, 1735, "Antonio de Ulloa", "Spanish platina: little silver", isotopes(
		natural(190, 0.012, 6.5e11*yr, alpha), stable(192, 0.782), unstable(193, 50*yr, ec), stable(194, 32.86), stable(195, 33.78),
		stable(196, 25.21), stable(198, 7.356))},
	{79, "Au", "Gold", 6, 11, transition, 1337.33, 3243, 196.97, primordial, none, 0, "", "Anglo-Saxon gold; Latin aurum", isotopes(
		unstable(195, 186.1*days, ec), stable(197, 100), unstable(198, 2.6948*days, bminus))},
	{80, "Hg", "Mercury", 6, 12, transition, 234.32, 629.88, 200.59, primordial, absorbed, 0, "", "the planet Mercury; Latin hydrargyrum", isotopes(
		unstable(194, 444*yr, ec), stable(196, 0.15), stable(198, 9.97), stable(199, 16.87), stable(200, 23.10), stable(201, 13.18),
		stable(202, 29.86), unstable(203, 46.612*days, bminus), stable(204, 6.87))},
	{81, "Tl", "Thallium", 6, 13, post, 577, 1746, 204.38, primordial, none, 1861, "William Crookes", "Greek thallos: green shoot", isotopes(
		stable(203, 29.52), unstable(204, 3.78*yr, bminus, ec), stable(205, 70.48), unstable(207, 4.77*mins, bminus),
		unstable(208, 3.053*mins, bminus), unstable(210, 1.30*mins, bminus))},
	{82, "Pb", "Lead", 6, 14, post, 600.61, 2022, 207.2, primordial, absorbed, 0, "", "Anglo-Saxon lead; Latin plumbum", isotopes(
		stable(204, 1.4), unstable(205, 1.73e7*yr, ec), stable(206, 24.1), stable(207, 22.1), stable(208, 52.4), unstable(210, 22.2*yr, bminus),
		unstable(211, 36.1*mins, bminus), unstable(212, 10.64*hr, bminus), unstable(214, 26.8*mins, bminus))},
	{83, "Bi", "Bismuth", 6, 15, post, 544.7, 1837, 208.98, primordial, none, 1753, "Claude François Geoffroy", "German Wismut: white mass", isotopes(
		unstable(207, 31.55*yr, ec), unstable(208, 3.68e5*yr, ec), natural(209, 100, 2.01e19*yr, alpha), unstable(210, 5.012*days, alpha, bminus),
		unstable(211, 2.14*mins, alpha, bminus), unstable(212, 60.55*mins, alpha, bminus), unstable(214, 19.9*mins, alpha, bminus))},
	{84, "Po", "Polonium", 6, 16, post, 527, 1235, 209, decay, none, 1898, "Pierre Curie, Marie Curie", "Latin Polonia: Poland", isotopes(
		unstable(208, 2.898*yr, alpha), unstable(209, 125*yr, alpha), unstable(210, 138.376*days, alpha), unstable(211, 0.516*sec, alpha),
		unstable(212, 0.299*us, alpha), unstable(214, 164.3*us, alpha), unstable(215, 1.781*ms, alpha), unstable(216, 0.145*sec, alpha),
		unstable(218, 3.10*mins, alpha, bminus))},
	{85, "At", "Astatine", 6, 17, halogen, 575, 610, 210, decay, none, 1940, "Dale R. Corson, Kenneth Ross MacKenzie, Emilio Segrè", "Greek astatos: unstable", isotopes(
		unstable(209, 5.41*hr, alpha, ec), unstable(210, 8.1*hr, alpha, ec), unstable(211, 7.214*hr, alpha, ec), unstable(218, 1.5*sec, alpha, bminus),
		unstable(219, 56*sec, alpha, bminus))},
	{86, "Rn", "Radon", 6, 18, noble, 202, 211.5, 222, decay, none, 1899, "Ernest Rutherford, Robert B. Owens", "the element radium", isotopes(
		unstable(211, 14.6*hr, alpha, ec), unstable(219, 3.96*sec, alpha), unstable(220, 55.6*sec, alpha), unstable(222, 3.8235*days, alpha))},
	{87, "Fr", "Francium", 7, 1, alkali, 300, 950, 223, decay, none, 1939, "Marguerite Perey", "the country France", isotopes(
		unstable(221, 4.9*mins, alpha), unstable(222, 14.2*mins, bminus), unstable(223, 22.00*mins, alpha, bminus))},
	{88, "Ra", "Radium", 7, 2, alkaline, 973, 2010, 226, decay, none, 1898, "Pierre Curie, Marie Curie", "Latin radius: ray", isotopes(
		unstable(223, 11.43*days, alpha), unstable(224, 3.6319*days, alpha), unstable(225, 14.9*days, bminus), unstable(226, 1600*yr, alpha),
		unstable(228, 5.75*yr, bminus))},
	{89, "Ac", "Actinium", 7, 0, actinoid, 1500, 3500, 227, decay, none, 1899, "André-Louis Debierne", "Greek aktis: ray", isotopes(
		unstable(225, 10.0*days, alpha), unstable(227, 21.772*yr, alpha, bminus), unstable(228, 6.15*hr, bminus))},
	{90, "Th", "Thorium", 7, 0, actinoid, 2023, 5061, 232.04, primordial, none, 1829, "Jöns Jacob Berzelius", "Thor, the Norse god of thunder", isotopes(
		unstable(227, 18.68*days, alpha), unstable(228, 1.9116*yr, alpha), unstable(229, 7340*yr, alpha), natural(230, 0.02, 7.538e4*yr, alpha),
		unstable(231, 25.52*hr, bminus), natural(232, 99.98, 1.405e10*yr, alpha, sf), unstable(234, 24.10*days, bminus))},
	{91, "Pa", "Protactinium", 7, 0, actinoid, 1841, 4300, 231.04, decay, none, 1913, "Kasimir Fajans, Oswald Helmuth Göhring", "Greek protos: first, before actinium", isotopes(
		unstable(230, 17.4*days, bminus, ec), natural(231, 100, 3.276e4*yr, alpha), unstable(233, 26.975*days, bminus), unstable(234, 6.70*hr, bminus))},
	{92, "U", "Uranium", 7, 0, actinoid, 1405.3, 4404, 238.03, primordial, none, 1789, "Martin Heinrich Klaproth", "the planet Uranus", isotopes(
		unstable(232, 68.9*yr, alpha), unstable(233, 1.592e5*yr, alpha), natural(234, 0.0054, 2.455e5*yr, alpha),
		natural(235, 0.7204, 7.04e8*yr, alpha, sf), unstable(236, 2.342e7*yr, alpha), natural(238, 99.2742, 4.468e9*yr, alpha, sf))},
	{93, "Np", "Neptunium", 7, 0, actinoid, 912, 4447, 237, decay, none, 1940, "Edwin McMillan, Philip H. Abelson", "the planet Neptune", isotopes(
		unstable(235, 396.1*days, ec), unstable(236, 1.54e5*yr, bminus, ec), unstable(237, 2.144e6*yr, alpha), unstable(239, 2.356*days, bminus))},
	{94, "Pu", "Plutonium", 7, 0, actinoid, 912.5, 3505, 244, decay, none, 1940, "Glenn T. Seaborg et al.", "the dwarf planet Pluto", isotopes(
		unstable(238, 87.7*yr, alpha), unstable(239, 2.411e4*yr, alpha), unstable(240, 6561*yr, alpha), unstable(241, 14.29*yr, bminus),
		unstable(242, 3.75e5*yr, alpha), unstable(244, 8.0e7*yr, alpha, sf))},
	{95, "Am", "Americium", 7, 0, actinoid, 1449, 2880, 243, synthetic, none, 1944, "Glenn T. Seaborg et al.", "the Americas", isotopes(
		unstable(241, 432.2*yr, alpha), unstable(242, 16.02*hr, bminus, ec), unstable(243, 7370*yr, alpha))},
	{96, "Cm", "Curium", 7, 0, actinoid, 1613, 3383, 247, synthetic, none, 1944, "Glenn T. Seaborg et al.", "Pierre and Marie Curie", isotopes(
		unstable(243, 29.1*yr, alpha, ec), unstable(244, 18.1*yr, alpha), unstable(245, 8500*yr, alpha), unstable(246, 4760*yr, alpha),
		unstable(247, 1.56e7*yr, alpha), unstable(248, 3.48e5*yr, alpha, sf))},
	{97, "Bk", "Berkelium", 7, 0, actinoid, 1259, 2900, 247, synthetic, none, 1949, "Glenn T. Seaborg et al.", "Berkeley, California", isotopes(
		unstable(245, 4.94*days, alpha, ec), unstable(247, 1380*yr, alpha), unstable(249, 330*days, alpha, bminus))},
	{98, "Cf", "Californium", 7, 0, actinoid, 1173, 1743, 251, synthetic, none, 1950, "Stanley G. Thompson et al.", "the state of California", isotopes(
		unstable(249, 351*yr, alpha), unstable(250, 13.08*yr, alpha, sf), unstable(251, 898*yr, alpha), unstable(252, 2.645*yr, alpha, sf))},
	{99, "Es", "Einsteinium", 7, 0, actinoid, 1133, 0, 252, synthetic, none, 1952, "Albert Ghiorso et al.", "the physicist Albert Einstein", isotopes(
		unstable(252, 471.7*days, alpha, ec), unstable(253, 20.47*days, alpha), unstable(254, 275.7*days, alpha), unstable(255, 39.8*days, alpha, bminus))},
	{100, "Fm", "Fermium", 7, 0, actinoid, 0, 0, 257, synthetic, none, 1952, "Albert Ghiorso et al.", "the physicist Enrico Fermi", isotopes(
		unstable(252, 25.39*hr, alpha, sf), unstable(253, 3.0*days, alpha, ec), unstable(257, 100.5*days, alpha, sf))},
	{101, "Md", "Mendelevium", 7, 0, actinoid, 0, 0, 258, synthetic, none, 1955, "Albert Ghiorso et al.", "the chemist Dmitri Mendeleev", isotopes(
		unstable(258, 51.5*days, alpha), unstable(260, 31.8*days, alpha, sf))},
	{102, "No", "Nobelium", 7, 0, actinoid, 0, 0, 259, synthetic, none, 1966, "Georgy Flyorov et al.", "the chemist Alfred Nobel", isotopes(
		unstable(255, 3.1*mins, alpha, ec), unstable(259, 58*mins, alpha, ec, sf))},
	{103, "Lr", "Lawrencium", 7, 0, actinoid, 0, 0, 266, synthetic, none, 1961, "Albert Ghiorso et al.", "the physicist Ernest Lawrence", isotopes(
		unstable(262, 4*hr, ec, sf), unstable(266, 11*hr, sf))},
	{104, "Rf", "Rutherfordium", 7, 4, transition, 0, 0, 267, synthetic, none, 1964, "JINR Dubna", "the physicist Ernest Rutherford", isotopes(
		unstable(265, 1.1*mins, sf), unstable(267, 1.3*hr, alpha, sf))},
	{105, "Db", "Dubnium", 7, 5, transition, 0, 0, 268, synthetic, none, 1968, "JINR Dubna", "Dubna, Russia", isotopes(
		unstable(268, 29*hr, ec, sf))},
	{106, "Sg", "Seaborgium", 7, 6, transition, 0, 0, 269, synthetic, none, 1974, "LBNL Berkeley", "the chemist Glenn T. Seaborg", isotopes(
		unstable(269, 14*mins, alpha), unstable(271, 1.9*mins, alpha, sf))},
	{107, "Bh", "Bohrium", 7, 7, transition, 0, 0, 270, synthetic, none, 1981, "GSI Darmstadt", "the physicist Niels Bohr", isotopes(
		unstable(270, 61*sec, alpha), unstable(274, 40*sec, alpha))},
	{108, "Hs", "Hassium", 7, 8, transition, 0, 0, 269, synthetic, none, 1984, "GSI Darmstadt", "Latin Hassia: Hesse", isotopes(
		unstable(269, 16*sec, alpha), unstable(270, 22*sec, alpha))},
	{109, "Mt", "Meitnerium", 7, 9, transition, 0, 0, 278, synthetic, none, 1982, "GSI Darmstadt", "the physicist Lise Meitner", isotopes(
		unstable(276, 0.72*sec, alpha), unstable(278, 4.5*sec, alpha))},
	{110, "Ds", "Darmstadtium", 7, 10, transition, 0, 0, 281, synthetic, none, 1994, "GSI Darmstadt", "Darmstadt, Germany", isotopes(
		unstable(280, 11*sec, sf), unstable(281, 12.7*sec, alpha, sf))},
	{111, "Rg", "Roentgenium", 7, 11, transition, 0, 0, 282, synthetic, none, 1994, "GSI Darmstadt", "the physicist Wilhelm Röntgen", isotopes(
		unstable(281, 17*sec, sf), unstable(282, 100*sec, alpha))},
	{112, "Cn", "Copernicium", 7, 12, transition, 0, 0, 285, synthetic, none, 1996, "GSI Darmstadt", "the astronomer Nicolaus Copernicus", isotopes(
		unstable(283, 4*sec, alpha, sf), unstable(285, 28*sec, alpha))},
	{113, "Nh", "Nihonium", 7, 13, post, 0, 0, 286, synthetic, none, 2004, "RIKEN", "Japanese Nihon: Japan", isotopes(
		unstable(285, 4.2*sec, alpha), unstable(286, 9.5*sec, alpha))},
	{114, "Fl", "Flerovium", 7, 14, post, 0, 0, 289, synthetic, none, 1998, "JINR Dubna", "the Flerov Laboratory of Nuclear Reactions", isotopes(
		unstable(288, 0.66*sec, alpha), unstable(289, 1.9*sec, alpha))},
	{115, "Mc", "Moscovium", 7, 15, post, 0, 0, 290, synthetic, none, 2003, "JINR Dubna, LLNL", "the Moscow region", isotopes(
		unstable(289, 0.33*sec, alpha), unstable(290, 0.65*sec, alpha))},
	{116, "Lv", "Livermorium", 7, 16, post, 0, 0, 293, synthetic, none, 2000, "JINR Dubna, LLNL", "Lawrence Livermore National Laboratory", isotopes(
		unstable(292, 13*ms, alpha), unstable(293, 57*ms, alpha))},
	{117, "Ts", "Tennessine", 7, 17, halogen, 0, 0, 294, synthetic, none, 2010, "JINR Dubna, ORNL", "the state of Tennessee", isotopes(
		unstable(293, 22*ms, alpha), unstable(294, 51*ms, alpha))},
	{118, "Og", "Oganesson", 7, 18, noble, 0, 0, 294, synthetic, none, 2002, "JINR Dubna, LLNL", "the physicist Yuri Oganessian", isotopes(
		unstable(294, 0.58*ms, alpha))},
}
