// Package geo - Static city coordinate table
package geo

import "tripcost/core/types"

// DefaultCities is the built-in city coordinate table. It is reference
// data, versioned with the binary; callers inject it into a CityIndex
// so tests can substitute their own dataset.
func DefaultCities() []types.CityLocation {
	return []types.CityLocation{
		// Brazil - Sudeste
		{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333, Region: "Sudeste"},
		{Name: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729, Region: "Sudeste"},
		{Name: "Belo Horizonte", Latitude: -19.9167, Longitude: -43.9345, Region: "Sudeste"},
		{Name: "Vitória", Latitude: -20.3155, Longitude: -40.3128, Region: "Sudeste"},
		{Name: "Campinas", Latitude: -22.9099, Longitude: -47.0626, Region: "Sudeste"},
		{Name: "Santos", Latitude: -23.9608, Longitude: -46.3336, Region: "Sudeste"},
		{Name: "Ouro Preto", Latitude: -20.3856, Longitude: -43.5035, Region: "Sudeste"},
		{Name: "Paraty", Latitude: -23.2178, Longitude: -44.7131, Region: "Sudeste"},
		{Name: "Campos do Jordão", Latitude: -22.7386, Longitude: -45.5916, Region: "Sudeste"},
		{Name: "Búzios", Latitude: -22.7469, Longitude: -41.8816, Region: "Sudeste"},

		// Brazil - Sul
		{Name: "Curitiba", Latitude: -25.4284, Longitude: -49.2733, Region: "Sul"},
		{Name: "Porto Alegre", Latitude: -30.0346, Longitude: -51.2177, Region: "Sul"},
		{Name: "Florianópolis", Latitude: -27.5954, Longitude: -48.5480, Region: "Sul"},
		{Name: "Gramado", Latitude: -29.3788, Longitude: -50.8740, Region: "Sul"},
		{Name: "Foz do Iguaçu", Latitude: -25.5478, Longitude: -54.5882, Region: "Sul"},
		{Name: "Balneário Camboriú", Latitude: -26.9906, Longitude: -48.6348, Region: "Sul"},
		{Name: "Bento Gonçalves", Latitude: -29.1662, Longitude: -51.5165, Region: "Sul"},
		{Name: "Joinville", Latitude: -26.3045, Longitude: -48.8487, Region: "Sul"},

		// Brazil - Nordeste
		{Name: "Salvador", Latitude: -12.9777, Longitude: -38.5016, Region: "Nordeste"},
		{Name: "Fortaleza", Latitude: -3.7327, Longitude: -38.5270, Region: "Nordeste"},
		{Name: "Recife", Latitude: -8.0476, Longitude: -34.8770, Region: "Nordeste"},
		{Name: "Natal", Latitude: -5.7945, Longitude: -35.2110, Region: "Nordeste"},
		{Name: "Maceió", Latitude: -9.6498, Longitude: -35.7089, Region: "Nordeste"},
		{Name: "João Pessoa", Latitude: -7.1195, Longitude: -34.8450, Region: "Nordeste"},
		{Name: "Aracaju", Latitude: -10.9472, Longitude: -37.0731, Region: "Nordeste"},
		{Name: "São Luís", Latitude: -2.5387, Longitude: -44.2825, Region: "Nordeste"},
		{Name: "Teresina", Latitude: -5.0892, Longitude: -42.8019, Region: "Nordeste"},
		{Name: "Porto de Galinhas", Latitude: -8.5063, Longitude: -35.0086, Region: "Nordeste"},
		{Name: "Jericoacoara", Latitude: -2.7964, Longitude: -40.5117, Region: "Nordeste"},
		{Name: "Porto Seguro", Latitude: -16.4497, Longitude: -39.0647, Region: "Nordeste"},
		{Name: "Fernando de Noronha", Latitude: -3.8549, Longitude: -32.4243, Region: "Nordeste"},
		{Name: "Pipa", Latitude: -6.2285, Longitude: -35.0461, Region: "Nordeste"},
		{Name: "Trancoso", Latitude: -16.5895, Longitude: -39.0937, Region: "Nordeste"},
		{Name: "Lençóis", Latitude: -12.5619, Longitude: -41.3902, Region: "Nordeste"},

		// Brazil - Norte
		{Name: "Manaus", Latitude: -3.1190, Longitude: -60.0217, Region: "Norte"},
		{Name: "Belém", Latitude: -1.4558, Longitude: -48.4902, Region: "Norte"},
		{Name: "Palmas", Latitude: -10.1689, Longitude: -48.3317, Region: "Norte"},
		{Name: "Porto Velho", Latitude: -8.7612, Longitude: -63.9004, Region: "Norte"},
		{Name: "Rio Branco", Latitude: -9.9754, Longitude: -67.8249, Region: "Norte"},
		{Name: "Boa Vista", Latitude: 2.8235, Longitude: -60.6758, Region: "Norte"},
		{Name: "Macapá", Latitude: 0.0349, Longitude: -51.0694, Region: "Norte"},
		{Name: "Alter do Chão", Latitude: -2.5082, Longitude: -54.9541, Region: "Norte"},

		// Brazil - Centro-Oeste
		{Name: "Brasília", Latitude: -15.7975, Longitude: -47.8919, Region: "Centro-Oeste"},
		{Name: "Goiânia", Latitude: -16.6869, Longitude: -49.2648, Region: "Centro-Oeste"},
		{Name: "Cuiabá", Latitude: -15.6014, Longitude: -56.0979, Region: "Centro-Oeste"},
		{Name: "Campo Grande", Latitude: -20.4697, Longitude: -54.6201, Region: "Centro-Oeste"},
		{Name: "Bonito", Latitude: -21.1261, Longitude: -56.4836, Region: "Centro-Oeste"},
		{Name: "Chapada dos Veadeiros", Latitude: -14.1318, Longitude: -47.5208, Region: "Centro-Oeste"},
		{Name: "Caldas Novas", Latitude: -17.7442, Longitude: -48.6250, Region: "Centro-Oeste"},

		// South America
		{Name: "Buenos Aires", Latitude: -34.6037, Longitude: -58.3816, Region: "South America"},
		{Name: "Santiago", Latitude: -33.4489, Longitude: -70.6693, Region: "South America"},
		{Name: "Montevideo", Latitude: -34.9011, Longitude: -56.1645, Region: "South America"},
		{Name: "Lima", Latitude: -12.0464, Longitude: -77.0428, Region: "South America"},
		{Name: "Bogotá", Latitude: 4.7110, Longitude: -74.0721, Region: "South America"},
		{Name: "Cartagena", Latitude: 10.3910, Longitude: -75.4794, Region: "South America"},
		{Name: "Cusco", Latitude: -13.5320, Longitude: -71.9675, Region: "South America"},
		{Name: "Quito", Latitude: -0.1807, Longitude: -78.4678, Region: "South America"},
		{Name: "La Paz", Latitude: -16.4897, Longitude: -68.1193, Region: "South America"},
		{Name: "Bariloche", Latitude: -41.1335, Longitude: -71.3103, Region: "South America"},
		{Name: "Mendoza", Latitude: -32.8895, Longitude: -68.8458, Region: "South America"},
		{Name: "Punta del Este", Latitude: -34.9608, Longitude: -54.9433, Region: "South America"},
		{Name: "Asunción", Latitude: -25.2637, Longitude: -57.5759, Region: "South America"},
		{Name: "Caracas", Latitude: 10.4806, Longitude: -66.9036, Region: "South America"},

		// North America
		{Name: "New York", Latitude: 40.7128, Longitude: -74.0060, Region: "North America"},
		{Name: "Miami", Latitude: 25.7617, Longitude: -80.1918, Region: "North America"},
		{Name: "Orlando", Latitude: 28.5383, Longitude: -81.3792, Region: "North America"},
		{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, Region: "North America"},
		{Name: "San Francisco", Latitude: 37.7749, Longitude: -122.4194, Region: "North America"},
		{Name: "Las Vegas", Latitude: 36.1699, Longitude: -115.1398, Region: "North America"},
		{Name: "Chicago", Latitude: 41.8781, Longitude: -87.6298, Region: "North America"},
		{Name: "Toronto", Latitude: 43.6532, Longitude: -79.3832, Region: "North America"},
		{Name: "Vancouver", Latitude: 49.2827, Longitude: -123.1207, Region: "North America"},
		{Name: "Mexico City", Latitude: 19.4326, Longitude: -99.1332, Region: "North America"},
		{Name: "Cancún", Latitude: 21.1619, Longitude: -86.8515, Region: "North America"},
		{Name: "Havana", Latitude: 23.1136, Longitude: -82.3666, Region: "North America"},
		{Name: "Punta Cana", Latitude: 18.5601, Longitude: -68.3725, Region: "North America"},

		// Europe
		{Name: "Lisbon", Latitude: 38.7223, Longitude: -9.1393, Region: "Europe"},
		{Name: "Porto", Latitude: 41.1579, Longitude: -8.6291, Region: "Europe"},
		{Name: "Madrid", Latitude: 40.4168, Longitude: -3.7038, Region: "Europe"},
		{Name: "Barcelona", Latitude: 41.3851, Longitude: 2.1734, Region: "Europe"},
		{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Region: "Europe"},
		{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Region: "Europe"},
		{Name: "Rome", Latitude: 41.9028, Longitude: 12.4964, Region: "Europe"},
		{Name: "Milan", Latitude: 45.4642, Longitude: 9.1900, Region: "Europe"},
		{Name: "Venice", Latitude: 45.4408, Longitude: 12.3155, Region: "Europe"},
		{Name: "Amsterdam", Latitude: 52.3676, Longitude: 4.9041, Region: "Europe"},
		{Name: "Berlin", Latitude: 52.5200, Longitude: 13.4050, Region: "Europe"},
		{Name: "Munich", Latitude: 48.1351, Longitude: 11.5820, Region: "Europe"},
		{Name: "Vienna", Latitude: 48.2082, Longitude: 16.3738, Region: "Europe"},
		{Name: "Prague", Latitude: 50.0755, Longitude: 14.4378, Region: "Europe"},
		{Name: "Zurich", Latitude: 47.3769, Longitude: 8.5417, Region: "Europe"},
		{Name: "Athens", Latitude: 37.9838, Longitude: 23.7275, Region: "Europe"},
		{Name: "Santorini", Latitude: 36.3932, Longitude: 25.4615, Region: "Europe"},
		{Name: "Dublin", Latitude: 53.3498, Longitude: -6.2603, Region: "Europe"},
		{Name: "Copenhagen", Latitude: 55.6761, Longitude: 12.5683, Region: "Europe"},
		{Name: "Stockholm", Latitude: 59.3293, Longitude: 18.0686, Region: "Europe"},
		{Name: "Budapest", Latitude: 47.4979, Longitude: 19.0402, Region: "Europe"},
		{Name: "Istanbul", Latitude: 41.0082, Longitude: 28.9784, Region: "Europe"},

		// Africa & Middle East
		{Name: "Cape Town", Latitude: -33.9249, Longitude: 18.4241, Region: "Africa"},
		{Name: "Johannesburg", Latitude: -26.2041, Longitude: 28.0473, Region: "Africa"},
		{Name: "Cairo", Latitude: 30.0444, Longitude: 31.2357, Region: "Africa"},
		{Name: "Marrakech", Latitude: 31.6295, Longitude: -7.9811, Region: "Africa"},
		{Name: "Nairobi", Latitude: -1.2921, Longitude: 36.8219, Region: "Africa"},
		{Name: "Dubai", Latitude: 25.2048, Longitude: 55.2708, Region: "Middle East"},
		{Name: "Tel Aviv", Latitude: 32.0853, Longitude: 34.7818, Region: "Middle East"},
		{Name: "Doha", Latitude: 25.2854, Longitude: 51.5310, Region: "Middle East"},

		// Asia & Oceania
		{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Region: "Asia"},
		{Name: "Osaka", Latitude: 34.6937, Longitude: 135.5023, Region: "Asia"},
		{Name: "Seoul", Latitude: 37.5665, Longitude: 126.9780, Region: "Asia"},
		{Name: "Beijing", Latitude: 39.9042, Longitude: 116.4074, Region: "Asia"},
		{Name: "Shanghai", Latitude: 31.2304, Longitude: 121.4737, Region: "Asia"},
		{Name: "Hong Kong", Latitude: 22.3193, Longitude: 114.1694, Region: "Asia"},
		{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Region: "Asia"},
		{Name: "Bangkok", Latitude: 13.7563, Longitude: 100.5018, Region: "Asia"},
		{Name: "Phuket", Latitude: 7.8804, Longitude: 98.3923, Region: "Asia"},
		{Name: "Bali", Latitude: -8.3405, Longitude: 115.0920, Region: "Asia"},
		{Name: "New Delhi", Latitude: 28.6139, Longitude: 77.2090, Region: "Asia"},
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, Region: "Asia"},
		{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Region: "Oceania"},
		{Name: "Melbourne", Latitude: -37.8136, Longitude: 144.9631, Region: "Oceania"},
		{Name: "Auckland", Latitude: -36.8485, Longitude: 174.7633, Region: "Oceania"},
	}
}
