/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package maya

// Places per Long Count position: how many units of the position below
// make one unit of this position. Kin counts 20 because the winal holds 20
// kin; winal counts 18 because the tun holds 18 winal.
const (
	PiktunPlaces = 20
	BaktunPlaces = 13
	KatunPlaces  = 20
	TunPlaces    = 20
	WinalPlaces  = 18
	KinPlaces    = 20
)

// Days per unit of each Long Count position: 1, 20, 360, 7200, 144000 and
// 1872000.
const (
	KinDays    = 1
	WinalDays  = KinPlaces
	TunDays    = WinalPlaces * WinalDays
	KatunDays  = TunPlaces * TunDays
	BaktunDays = KatunPlaces * KatunDays
	PiktunDays = BaktunPlaces * BaktunDays
)

// coefficients lists the days per unit from piktun down to kin.
var coefficients = [6]int{PiktunDays, BaktunDays, KatunDays, TunDays, WinalDays, KinDays}

// Cycle lengths of the calendar rounds.
const (
	TzolkinNumbers = 13
	TzolkinDays    = 260
	HaabDays       = 365
)

// Day offsets that align each cycle with day zero of the Long Count, which
// is 4 Ajaw 8 Kumk'u.
const (
	tzolkinNumberShift = 4
	tzolkinSignShift   = 19
	haabShift          = 347
)
