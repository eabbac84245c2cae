package model

// AddressCluster is a set of addresses believed to belong to one owner.
// ID is the dense index of the cluster in the clustering arena.
type AddressCluster struct {
	ID        int
	Addresses []string
}

// AddressIndex maps an address to the index of its current cluster.
type AddressIndex map[string]int

// ClusterRow is a flattened AddressIndex entry prepared for export.
type ClusterRow struct {
	RunID     string
	Address   string
	ClusterID uint64
}
