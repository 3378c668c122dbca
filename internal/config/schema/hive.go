package schema

// MetastoreSite returns the hive-site.xml properties for a standalone local
// metastore backed by embedded Derby. derbyURL is the JDBC connection URL
// pointing at the sandbox state directory.
func MetastoreSite(derbyURL string) []Property {
	return []Property{
		// Single-user, in-process execution
		{Name: "hive.server2.enable.doAs", Value: "false"},
		{Name: "hive.exec.submit.local.task.via.child", Value: "false"},
		{Name: "hive.compactor.worker.threads", Value: "1"},
		{Name: "mapreduce.framework.name", Value: "local"},

		// Embedded Derby database
		{Name: "javax.jdo.option.ConnectionURL", Value: derbyURL},
		{Name: "hive.metastore.event.db.notification.api.auth", Value: "false"},
	}
}
