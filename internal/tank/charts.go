package tank

// Dip charts for the two station tanks. Values are liters at base+offset cm;
// readings from 250 cm upward sit in the dip tube above the shell.

var table30k = [Rows]Row{
	/*   0 */ {0, 13, 38, 70, 107, 149, 196, 247, 301, 359},
	/*  10 */ {420, 484, 551, 620, 692, 767, 844, 923, 1004, 1088},
	/*  20 */ {1173, 1261, 1350, 1442, 1535, 1629, 1726, 1824, 1924, 2025},
	/*  30 */ {2128, 2233, 2338, 2446, 2554, 2664, 2776, 2888, 3002, 3117},
	/*  40 */ {3233, 3351, 3470, 3589, 3710, 3832, 3955, 4079, 4205, 4331},
	/*  50 */ {4458, 4586, 4715, 4845, 4975, 5107, 5240, 5373, 5507, 5642},
	/*  60 */ {5778, 5915, 6052, 6190, 6329, 6468, 6609, 6750, 6891, 7033},
	/*  70 */ {7176, 7320, 7464, 7609, 7754, 7900, 8046, 8193, 8341, 8489},
	/*  80 */ {8637, 8786, 8936, 9086, 9236, 9387, 9538, 9690, 9842, 9994},
	/*  90 */ {10147, 10301, 10454, 10608, 10763, 10917, 11072, 11227, 11383, 11539},
	/* 100 */ {11695, 11851, 12008, 12165, 12322, 12479, 12637, 12794, 12952, 13110},
	/* 110 */ {13268, 13427, 13585, 13744, 13903, 14062, 14221, 14380, 14539, 14698},
	/* 120 */ {14857, 15017, 15176, 15336, 15495, 15654, 15814, 15973, 16133, 16292},
	/* 130 */ {16452, 16611, 16770, 16929, 17088, 17247, 17406, 17565, 17724, 17882},
	/* 140 */ {18041, 18199, 18357, 18515, 18672, 18830, 18987, 19144, 19301, 19458},
	/* 150 */ {19614, 19770, 19926, 20082, 20237, 20392, 20546, 20701, 20855, 21008},
	/* 160 */ {21162, 21315, 21467, 21619, 21771, 21922, 22073, 22223, 22373, 22523},
	/* 170 */ {22672, 22820, 22968, 23116, 23263, 23409, 23555, 23700, 23845, 23989},
	/* 180 */ {24133, 24276, 24418, 24559, 24700, 24841, 24980, 25119, 25257, 25394},
	/* 190 */ {25531, 25667, 25802, 25936, 26069, 26202, 26334, 26464, 26594, 26723},
	/* 200 */ {26851, 26978, 27104, 27230, 27354, 27477, 27599, 27720, 27839, 27958},
	/* 210 */ {28076, 28192, 28307, 28421, 28533, 28645, 28755, 28863, 28971, 29076},
	/* 220 */ {29181, 29284, 29385, 29485, 29583, 29680, 29774, 29867, 29959, 30048},
	/* 230 */ {30136, 30221, 30305, 30386, 30465, 30542, 30617, 30689, 30758, 30825},
	/* 240 */ {30889, 30950, 31008, 31062, 31113, 31160, 31202, 31239, 31271, 31296},
	/* 250 */ {31309, 31309, 31309, 31309, 31309, 31309, 31309, 31309, 31309, 31309},
}

var table15k = [Rows]Row{
	/*   0 */ {0, 7, 19, 35, 53, 75, 98, 123, 150, 179},
	/*  10 */ {210, 242, 275, 310, 345, 383, 421, 461, 501, 543},
	/*  20 */ {585, 629, 674, 719, 766, 813, 861, 910, 960, 1010},
	/*  30 */ {1062, 1114, 1167, 1220, 1274, 1329, 1385, 1441, 1498, 1555},
	/*  40 */ {1613, 1672, 1731, 1791, 1851, 1912, 1973, 2035, 2098, 2161},
	/*  50 */ {2224, 2288, 2352, 2417, 2482, 2548, 2614, 2681, 2748, 2815},
	/*  60 */ {2883, 2951, 3020, 3088, 3158, 3227, 3297, 3368, 3438, 3509},
	/*  70 */ {3580, 3652, 3724, 3796, 3869, 3941, 4014, 4088, 4161, 4235},
	/*  80 */ {4309, 4384, 4458, 4533, 4608, 4683, 4759, 4835, 4910, 4987},
	/*  90 */ {5063, 5139, 5216, 5293, 5370, 5447, 5524, 5602, 5679, 5757},
	/* 100 */ {5835, 5913, 5991, 6069, 6148, 6226, 6305, 6383, 6462, 6541},
	/* 110 */ {6620, 6699, 6778, 6857, 6937, 7016, 7095, 7174, 7254, 7333},
	/* 120 */ {7413, 7492, 7572, 7651, 7731, 7810, 7890, 7970, 8049, 8129},
	/* 130 */ {8208, 8288, 8367, 8447, 8526, 8605, 8684, 8764, 8843, 8922},
	/* 140 */ {9001, 9080, 9159, 9238, 9316, 9395, 9473, 9552, 9630, 9708},
	/* 150 */ {9786, 9864, 9942, 10019, 10097, 10174, 10251, 10328, 10405, 10482},
	/* 160 */ {10558, 10634, 10711, 10786, 10862, 10938, 11013, 11088, 11163, 11237},
	/* 170 */ {11312, 11386, 11460, 11533, 11607, 11680, 11752, 11825, 11897, 11969},
	/* 180 */ {12041, 12112, 12183, 12253, 12324, 12394, 12463, 12533, 12601, 12670},
	/* 190 */ {12738, 12806, 12873, 12940, 13007, 13073, 13139, 13204, 13269, 13333},
	/* 200 */ {13397, 13460, 13523, 13586, 13648, 13709, 13770, 13830, 13890, 13949},
	/* 210 */ {14008, 14066, 14123, 14180, 14236, 14292, 14347, 14401, 14454, 14507},
	/* 220 */ {14559, 14611, 14661, 14711, 14760, 14808, 14855, 14902, 14947, 14992},
	/* 230 */ {15036, 15078, 15120, 15160, 15200, 15238, 15276, 15311, 15346, 15379},
	/* 240 */ {15411, 15442, 15471, 15498, 15523, 15546, 15568, 15586, 15602, 15614},
	/* 250 */ {15621, 15621, 15621, 15621, 15621, 15621, 15621, 15621, 15621, 15621},
}
