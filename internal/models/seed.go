package models

// SeedUsers returns the initial user list written to an empty store
func SeedUsers() []User {
	return []User{
		{ID: 1, FirstName: "David", LastName: "Wagner", Role: RoleSuperAdmin, Email: "david_wagner@example.com", Date: "24 Oct, 2015", Phone: "2052055555", RoleID: RoleIDAdmin},
		{ID: 2, FirstName: "Ina", LastName: "Hogan", Role: RoleAdmin, Email: "windler.warren@runte.net", Date: "24 Oct, 2015", Phone: "2052055555", RoleID: RoleIDAdmin},
		{ID: 3, FirstName: "Devin", LastName: "Harmon", Role: RoleHRAdmin, Email: "wintheiser_enos@yahoo.com", Date: "18 Dec, 2015", Phone: "2052055555", RoleID: RoleIDAdmin},
		{ID: 4, FirstName: "Lena", LastName: "Page", Role: RoleEmployee, Email: "camila_ledner@gmail.com", Date: "8 Oct, 2016", Phone: "2052055555", RoleID: RoleIDEmployee},
		{ID: 5, FirstName: "Eula", LastName: "Horton", Role: RoleSuperAdmin, Email: "edula_dorton1221@gmail.com", Date: "15 Jun, 2017", Phone: "2052055555", RoleID: RoleIDAdmin},
		{ID: 6, FirstName: "Victoria", LastName: "Perez", Role: RoleHRAdmin, Email: "terrill.wiza@hotmail.com", Date: "12 Jan, 2019", Phone: "2052055555", RoleID: RoleIDAdmin},
		{ID: 7, FirstName: "Cora", LastName: "Medina", Role: RoleEmployee, Email: "hagenes.isai@hotmail.com", Date: "21 Jul, 2020", Phone: "2052055555", RoleID: RoleIDEmployee},
	}
}

// SeedAds returns the initial ads list written to an empty store
func SeedAds() []Ad {
	return []Ad{
		{ID: 1, Network: "Facebook", Link: "https://facebook.com/ads/summer", Email: "ads@facebook.com", Phone: "(205)-205-5555", Status: AdStatusActive},
		{ID: 2, Network: "Google Ads", Link: "https://ads.google.com/campaign/42", Email: "campaigns@google.com", Phone: "(415)-555-0132", Status: AdStatusPaused},
		{ID: 3, Network: "Twitter", Link: "https://ads.twitter.com/promo", Email: "promo@twitter.com", Phone: "(212)-555-0199", Status: AdStatusActive},
		{ID: 4, Network: "LinkedIn", Link: "https://linkedin.com/campaignmanager", Email: "b2b@linkedin.com", Phone: "(650)-555-0147", Status: AdStatusInactive},
	}
}
