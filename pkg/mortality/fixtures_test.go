package mortality

const nat = "United States"

func usFixture() []USRow {
	return []USRow{
		{State: nat, Year: 2015, Cause: "All causes", Deaths: 100},
		{State: nat, Year: 2015, Cause: "Heart disease", Deaths: 50},
		{State: nat, Year: 2015, Cause: "Cancer", Deaths: 40},
		{State: nat, Year: 2015, Cause: "Alzheimer's disease", Deaths: 30},
		{State: nat, Year: 2015, Cause: "Suicide", Deaths: 10},

		{State: nat, Year: 2010, Cause: "Heart disease", Deaths: 45},
		{State: nat, Year: 2010, Cause: "Cancer", Deaths: 38},
		{State: nat, Year: 2010, Cause: "Suicide", Deaths: 8},
		{State: nat, Year: 2011, Cause: "Heart disease", Deaths: 46},
		{State: nat, Year: 2011, Cause: "Suicide", Deaths: 9},

		{State: "Alabama", Year: 2015, Cause: "Heart disease", Deaths: 5},
		{State: "Alabama", Year: 2015, Cause: "Suicide", Deaths: 1},
		{State: "Alaska", Year: 2015, Cause: "Cancer", Deaths: 2},
		{State: "Alaska", Year: 2011, Cause: "Cancer", Deaths: 2},
		{State: "Alaska", Year: 2015, Cause: "All causes", Deaths: 9},
	}
}

func mexicoFixture() []MexicoRow {
	return []MexicoRow{
		{Year: 2015, Cause: "Ischaemic heart diseases, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 200},
		{Year: 2015, Cause: "Ischaemic heart diseases, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 50},
		{Year: 2015, Cause: "Ischaemic heart diseases, ICD10", Population: "Male", AgeGroup: "Total", Deaths: 120},
		{Year: 2015, Cause: "Ischaemic heart diseases, ICD10", Population: "Total", AgeGroup: "0-4", Deaths: 3},
		{Year: 2010, Cause: "Ischaemic heart diseases, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 180},
		{Year: 2011, Cause: "Ischaemic heart diseases, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 190},

		{Year: 2015, Cause: "Malignant neoplasms, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 70},

		{Year: 2015, Cause: "Mental and behavioural disorders, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 5199},
		{Year: 2010, Cause: "Mental and behavioural disorders, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 4000},
		{Year: 2015, Cause: "Intentional self-harm, ICD10", Population: "Total", AgeGroup: "Total", Deaths: 6000},
	}
}
