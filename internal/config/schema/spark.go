package schema

// IcebergSentinel marks a spark-defaults.conf already rewritten by the
// sandbox. When it appears anywhere in the file the catalog block is not
// appended again.
const IcebergSentinel = "# hms-sandbox iceberg catalog"

// IcebergCatalog returns the spark-defaults.conf properties that register
// the sandbox metastore as Spark's default Iceberg catalog.
func IcebergCatalog(stateDir, warehouseDir, metastoreURI string) []Property {
	return []Property{
		{Name: "spark.sql.variable.substitute", Value: "true"},
		// Derby resolves derby.log and its lock files against this home.
		{Name: "spark.driver.extraJavaOptions", Value: "-Dderby.system.home=" + stateDir},
		{Name: "spark.sql.catalog.hms", Value: "org.apache.iceberg.spark.SparkCatalog"},
		{Name: "spark.sql.catalog.hms.type", Value: "hive"},
		{Name: "spark.sql.catalog.hms.uri", Value: metastoreURI},
		{Name: "spark.sql.defaultCatalog", Value: "hms"},
		{Name: "spark.sql.catalog.hms.warehouse", Value: warehouseDir},
	}
}
